package config

import (
	"os"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/revisor-lab/revisor/pkg/domain/model/auth"
	"github.com/revisor-lab/revisor/pkg/domain/types"
	"github.com/revisor-lab/revisor/pkg/usecase"
	"github.com/urfave/cli/v3"
)

// App holds CLI flags for application configuration
type App struct {
	configPath string
	password   string
	loginDelay time.Duration
	sessionTTL time.Duration
}

// UserEntry is one login user in the TOML configuration file
type UserEntry struct {
	ID          int      `toml:"id"`
	Username    string   `toml:"username"`
	Name        string   `toml:"name"`
	Email       string   `toml:"email"`
	Role        string   `toml:"role"`
	Permissions []string `toml:"permissions"`
}

// Validate checks if the UserEntry is valid
func (u *UserEntry) Validate() error {
	if u.Username == "" {
		return goerr.Wrap(ErrMissingUsername, "user entry", goerr.V("id", u.ID))
	}
	if _, err := types.ParseRole(u.Role); err != nil {
		return goerr.Wrap(ErrInvalidRole, err.Error(), goerr.V("username", u.Username))
	}
	return nil
}

// AppFile is the TOML application configuration file layout
type AppFile struct {
	Users []UserEntry `toml:"user"`
}

// Flags returns CLI flags for application configuration
func (a *App) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Usage:       "Path to TOML configuration file with login users",
			Sources:     cli.EnvVars("REVISOR_CONFIG"),
			Destination: &a.configPath,
		},
		&cli.StringFlag{
			Name:        "auth-password",
			Usage:       "Shared login password for all configured users",
			Sources:     cli.EnvVars("REVISOR_AUTH_PASSWORD"),
			Destination: &a.password,
		},
		&cli.DurationFlag{
			Name:        "login-delay",
			Usage:       "Artificial delay applied to every login attempt",
			Value:       time.Second,
			Sources:     cli.EnvVars("REVISOR_LOGIN_DELAY"),
			Destination: &a.loginDelay,
		},
		&cli.DurationFlag{
			Name:        "session-ttl",
			Usage:       "Login session lifetime",
			Value:       24 * time.Hour,
			Sources:     cli.EnvVars("REVISOR_SESSION_TTL"),
			Destination: &a.sessionTTL,
		},
	}
}

// Configure builds the auth configuration. Without a config file the
// built-in demo users are used.
func (a *App) Configure() (usecase.AuthConfig, error) {
	cfg := usecase.DefaultAuthConfig()
	cfg.LoginDelay = a.loginDelay
	cfg.SessionTTL = a.sessionTTL
	if a.password != "" {
		cfg.Password = a.password
	}

	if a.configPath == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(a.configPath)
	if err != nil {
		return usecase.AuthConfig{}, goerr.Wrap(ErrConfigNotFound, err.Error(), goerr.V(ConfigPathKey, a.configPath))
	}

	var file AppFile
	if err := toml.Unmarshal(raw, &file); err != nil {
		return usecase.AuthConfig{}, goerr.Wrap(ErrInvalidConfig, err.Error(), goerr.V(ConfigPathKey, a.configPath))
	}
	if len(file.Users) == 0 {
		return usecase.AuthConfig{}, goerr.Wrap(ErrInvalidConfig, "no users configured", goerr.V(ConfigPathKey, a.configPath))
	}

	seen := make(map[string]bool)
	users := make([]auth.User, 0, len(file.Users))
	for _, entry := range file.Users {
		if err := entry.Validate(); err != nil {
			return usecase.AuthConfig{}, err
		}
		if seen[entry.Username] {
			return usecase.AuthConfig{}, goerr.Wrap(ErrDuplicateUsername, "user entry", goerr.V("username", entry.Username))
		}
		seen[entry.Username] = true

		role, _ := types.ParseRole(entry.Role)
		users = append(users, auth.User{
			ID:          entry.ID,
			Username:    entry.Username,
			Name:        entry.Name,
			Email:       entry.Email,
			Role:        role,
			Permissions: entry.Permissions,
		})
	}

	cfg.Users = users
	return cfg, nil
}
