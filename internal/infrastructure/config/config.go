package config

import (
	"os"
	"strconv"
	"time"

	usecasecontract "github.com/ShaiBatonya/starquestDevServer/internal/usecase/contract"
)

// Config holds application configuration values.
type Config struct {
	SendActivationEmail         bool
	AppBaseURL                  string
	JWTCookieExpiry             time.Duration
	EmailVerificationCodeExpiry time.Duration
	PasswordResetTokenExpiry    time.Duration
	MemberInviteTokenExpiry     time.Duration
	InvitationExpiry            time.Duration
	ListingQueryTimeout         time.Duration
}

// NewConfig creates a new Config instance, loading values from environment variables.
func NewConfig() usecasecontract.IConfigProvider {
	return &Config{
		SendActivationEmail:         getEnvAsBool("SEND_ACTIVATION_EMAIL", true),
		AppBaseURL:                  getEnv("APP_BASE_URL", "http://localhost:8080"),
		JWTCookieExpiry:             time.Hour * 24 * time.Duration(getEnvAsInt("JWT_COOKIE_EXPIRES_IN_DAYS", 7)),
		EmailVerificationCodeExpiry: time.Minute * time.Duration(getEnvAsInt("EMAIL_VERIFICATION_CODE_EXPIRY_MINUTES", 20)),
		PasswordResetTokenExpiry:    time.Minute * time.Duration(getEnvAsInt("PASSWORD_RESET_TOKEN_EXPIRY_MINUTES", 10)),
		MemberInviteTokenExpiry:     time.Hour * time.Duration(getEnvAsInt("MEMBER_INVITE_TOKEN_EXPIRY_HOURS", 1)),
		InvitationExpiry:            time.Hour * 24 * time.Duration(getEnvAsInt("INVITATION_EXPIRY_DAYS", 7)),
		ListingQueryTimeout:         time.Second * time.Duration(getEnvAsInt("LISTING_QUERY_TIMEOUT_SECONDS", 10)),
	}
}

// GetSendActivationEmail returns whether to send a verification email on signup.
func (c *Config) GetSendActivationEmail() bool {
	return c.SendActivationEmail
}

// GetAppBaseURL returns the base URL of the application.
func (c *Config) GetAppBaseURL() string {
	return c.AppBaseURL
}

// GetJWTCookieExpiry returns the lifetime of the jwt auth cookie.
func (c *Config) GetJWTCookieExpiry() time.Duration {
	return c.JWTCookieExpiry
}

// GetEmailVerificationCodeExpiry returns the expiry window for signup
// verification codes.
func (c *Config) GetEmailVerificationCodeExpiry() time.Duration {
	return c.EmailVerificationCodeExpiry
}

// GetPasswordResetTokenExpiry returns the expiry duration for password reset tokens.
func (c *Config) GetPasswordResetTokenExpiry() time.Duration {
	return c.PasswordResetTokenExpiry
}

// GetMemberInviteTokenExpiry returns the short expiry used when an
// already-registered user is appended to a workspace directly.
func (c *Config) GetMemberInviteTokenExpiry() time.Duration {
	return c.MemberInviteTokenExpiry
}

// GetInvitationExpiry returns the lifetime of a standalone invitation
// created for a not-yet-registered email.
func (c *Config) GetInvitationExpiry() time.Duration {
	return c.InvitationExpiry
}

// GetListingQueryTimeout bounds read-heavy admin listing queries.
func (c *Config) GetListingQueryTimeout() time.Duration {
	return c.ListingQueryTimeout
}

// Helper function to get an environment variable or return a default value.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as an integer or return a default value.
func getEnvAsInt(name string, fallback int) int {
	valueStr := getEnv(name, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as a boolean or return a default value.
func getEnvAsBool(name string, fallback bool) bool {
	valStr := getEnv(name, "")
	if val, err := strconv.ParseBool(valStr); err == nil {
		return val
	}
	return fallback
}
