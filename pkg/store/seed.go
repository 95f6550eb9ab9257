package store

import (
	"time"

	"github.com/revisor-lab/revisor/pkg/domain/model"
	"github.com/revisor-lab/revisor/pkg/domain/types"
)

// Seeds holds the built-in default records written on each store's
// very first activation. The demo set mirrors a small internal audit
// program: a security audit and an HR audit with their execution,
// follow-up and reporting trail.
type Seeds struct {
	AuditTypes []model.AuditType
	Audits     []model.Audit
	Executions []model.ChecklistExecution
	Actions    []model.CorrectiveAction
	Reports    []model.Report
}

func seedDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func intPtr(v int) *int { return &v }

// DefaultSeeds returns the built-in demo data set
func DefaultSeeds() Seeds {
	return Seeds{
		AuditTypes: defaultAuditTypes(),
		Audits:     defaultAudits(),
		Executions: defaultExecutions(),
		Actions:    defaultActions(),
		Reports:    defaultReports(),
	}
}

func defaultAuditTypes() []model.AuditType {
	created := seedDate(2024, time.January, 1)
	return []model.AuditType{
		{ID: 1, Name: "Security", Description: "Audits covering information and physical security", Color: "#1976d2", Active: true, CreatedAt: created},
		{ID: 2, Name: "Human Resources", Description: "Audits of HR processes and labor compliance", Color: "#dc004e", Active: true, CreatedAt: created},
		{ID: 3, Name: "Finance", Description: "Financial and internal control audits", Color: "#388e3c", Active: true, CreatedAt: created},
		{ID: 4, Name: "Operations", Description: "Audits of operational and production processes", Color: "#f57c00", Active: true, CreatedAt: created},
		{ID: 5, Name: "Quality", Description: "Audits of quality management systems", Color: "#7b1fa2", Active: true, CreatedAt: created},
		{ID: 6, Name: "Environmental", Description: "Environmental compliance and sustainability audits", Color: "#388e3c", Active: false, CreatedAt: created},
	}
}

func defaultAudits() []model.Audit {
	return []model.Audit{
		{
			ID:              1,
			Name:            "Information Security Audit",
			Type:            "Security",
			PlanYear:        2024,
			StartDate:       seedDate(2024, time.January, 15),
			EndDate:         seedDate(2024, time.January, 20),
			Auditor:         "Juan Perez",
			Status:          types.AuditStatusCompleted,
			Description:     "Security audit of information systems",
			Scope:           "IT department",
			Department:      "Engineering division",
			Procedures:      "Review of security policies, vulnerability analysis, penetration testing, access log review.",
			Observations:    "Critical vulnerabilities were found in the authentication system. Access logs are not being monitored adequately. Two-factor authentication needs to be rolled out.",
			Recommendations: "Deploy two-factor authentication on all critical systems. Establish real-time log monitoring. Run quarterly security audits. Train staff on security practices.",
		},
		{
			ID:              2,
			Name:            "Human Resources Audit",
			Type:            "Human Resources",
			PlanYear:        2024,
			StartDate:       seedDate(2024, time.January, 10),
			EndDate:         seedDate(2024, time.January, 25),
			Auditor:         "Maria Garcia",
			Status:          types.AuditStatusInProgress,
			Description:     "Audit of HR processes",
			Scope:           "HR department",
			Department:      "Administration division",
			Procedures:      "Personnel file review, labor compliance verification, hiring process analysis, HR policy review.",
			Observations:    "Incomplete personnel files were identified for 15% of staff. Hiring does not fully follow established policy. Performance review documentation is missing.",
			Recommendations: "Complete all missing files within 30 days. Review and update hiring processes. Implement performance review tracking. Train HR staff on the updated policies.",
		},
	}
}

func defaultExecutions() []model.ChecklistExecution {
	return []model.ChecklistExecution{
		{
			ID:          1,
			Name:        "Security Verification Checklist",
			Category:    "Security",
			Description: "Checklist for information security audits",
			AuditID:     intPtr(1),
			AuditName:   "Information Security Audit",
			CreatedAt:   seedDate(2024, time.January, 1),
			Status:      "Active",
			Items: []model.ChecklistItem{
				{ID: 1, Description: "Are password policies in place?", Compliant: true, Observations: "Policies implemented correctly", Evidence: "Policy document"},
				{ID: 2, Description: "Are backups taken regularly?", Compliant: false, Observations: "Automatic scheduling missing", Evidence: "Backup report"},
			},
			Findings: []model.Finding{
				{ID: 1, Number: 1, Description: "No automatic backup policy", Severity: types.SeverityMedium, Recommendation: "Implement automatic backups with notifications"},
			},
			Observations:    "Critical vulnerabilities were found in the authentication system. Access logs are not being monitored adequately.",
			Recommendations: "Deploy two-factor authentication on all critical systems. Establish real-time log monitoring.",
		},
		{
			ID:          2,
			Name:        "HR Verification Checklist",
			Category:    "Human Resources",
			Description: "Checklist for HR process audits",
			AuditID:     intPtr(2),
			AuditName:   "Human Resources Audit",
			CreatedAt:   seedDate(2024, time.January, 2),
			Status:      "Active",
			Items: []model.ChecklistItem{
				{ID: 1, Description: "Are hiring policies in place?", Compliant: true, Observations: "Clear, documented policies", Evidence: "Policy manual"},
			},
			Findings:        []model.Finding{},
			Observations:    "Incomplete personnel files were identified for 15% of staff. Hiring does not fully follow established policy.",
			Recommendations: "Complete all missing files within 30 days. Review and update hiring processes.",
		},
	}
}

func defaultActions() []model.CorrectiveAction {
	completed := seedDate(2024, time.February, 10)
	return []model.CorrectiveAction{
		{
			ID:                 1,
			Title:              "Implement password policies",
			Description:        "Establish robust password policies for all systems",
			AuditID:            1,
			AuditName:          "Information Security Audit",
			FindingRef:         "1-1",
			FindingDescription: "Missing password policies",
			Responsible:        "IT department",
			Priority:           types.ActionPriorityHigh,
			Status:             types.ActionStatusInProgress,
			CreatedAt:          seedDate(2024, time.January, 15),
			DueDate:            seedDate(2024, time.March, 15),
			Progress:           60,
			Observations:       "Policies defined, rollout pending",
			Resources:          "Development team, 2FA vendor",
			Comments:           "Configuration completed on primary systems",
		},
		{
			ID:                 2,
			Title:              "Update HR procedures",
			Description:        "Review and update every HR department procedure",
			AuditID:            2,
			AuditName:          "Human Resources Audit",
			FindingRef:         "2-1",
			FindingDescription: "Outdated hiring procedures",
			Responsible:        "HR department",
			Priority:           types.ActionPriorityMedium,
			Status:             types.ActionStatusPending,
			CreatedAt:          seedDate(2024, time.January, 20),
			DueDate:            seedDate(2024, time.April, 20),
			Progress:           0,
			Observations:       "Waiting for management approval",
			Resources:          "HR team, legal counsel",
			Comments:           "Waiting for management approval",
		},
		{
			ID:                 3,
			Title:              "Establish backup verification process",
			Description:        "Create a procedure to regularly verify backup integrity",
			AuditID:            1,
			AuditName:          "Information Security Audit",
			FindingRef:         "1-1",
			FindingDescription: "Backups not verified regularly",
			Responsible:        "IT department",
			Priority:           types.ActionPriorityMedium,
			Status:             types.ActionStatusRegularized,
			CreatedAt:          seedDate(2024, time.January, 20),
			DueDate:            seedDate(2024, time.February, 15),
			CompletedAt:        &completed,
			Progress:           100,
			Observations:       "Process implemented and documented",
			Resources:          "Operations staff",
			Comments:           "Process implemented and documented",
		},
	}
}

func defaultReports() []model.Report {
	due1 := seedDate(2024, time.March, 1)
	due2 := seedDate(2024, time.April, 1)
	due3 := seedDate(2024, time.May, 1)
	return []model.Report{
		{
			ID:              1,
			Title:           "Information Security Audit Report",
			AuditID:         1,
			AuditName:       "Information Security Audit",
			CreatedAt:       seedDate(2024, time.January, 20),
			Status:          types.ReportStatusApproved,
			Summary:         "Security audit of the company's information systems",
			Scope:           "IT department, critical systems",
			Methodology:     "Documentation review, interviews, technical testing",
			Conclusions:     "Security vulnerabilities were identified that require immediate attention",
			Recommendations: "Implement password policies, update systems, train staff",
			Observations:    "The IT staff is committed to improving security",
			Findings: []model.ReportFinding{
				{ID: 1, Number: 1, Description: "Missing robust password policies", Severity: types.ReportSeverityCritical, Recommendation: "Implement password policies with minimum requirements", DueDate: &due1},
				{ID: 2, Number: 2, Description: "Outdated operating systems", Severity: types.ReportSeverityMajor, Recommendation: "Upgrade all operating systems to supported versions", DueDate: &due2},
			},
		},
		{
			ID:              2,
			Title:           "Human Resources Audit Report",
			AuditID:         2,
			AuditName:       "Human Resources Audit",
			CreatedAt:       seedDate(2024, time.January, 25),
			Status:          types.ReportStatusInReview,
			Summary:         "Audit of HR department processes and procedures",
			Scope:           "HR department, hiring and management processes",
			Methodology:     "Documentation review, interviews, process observation",
			Conclusions:     "HR processes are well documented but need some improvements",
			Recommendations: "Implement candidate tracking, improve review documentation",
			Observations:    "The HR department shows good organization and commitment",
			Findings: []model.ReportFinding{
				{ID: 1, Number: 1, Description: "No candidate tracking system", Severity: types.ReportSeverityMinor, Recommendation: "Adopt candidate management software", DueDate: &due3},
			},
		},
	}
}
