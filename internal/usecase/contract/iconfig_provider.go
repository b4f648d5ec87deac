package usecasecontract

import "time"

// IConfigProvider exposes runtime configuration to usecases.
type IConfigProvider interface {
	GetAppBaseURL() string
	GetSendActivationEmail() bool
	GetJWTCookieExpiry() time.Duration
	GetEmailVerificationCodeExpiry() time.Duration
	GetPasswordResetTokenExpiry() time.Duration
	GetMemberInviteTokenExpiry() time.Duration
	GetInvitationExpiry() time.Duration
	GetListingQueryTimeout() time.Duration
}
