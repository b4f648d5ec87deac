package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/ShaiBatonya/starquestDevServer/internal/domain/apperror"
	"github.com/ShaiBatonya/starquestDevServer/internal/domain/contract"
	"github.com/ShaiBatonya/starquestDevServer/internal/domain/entity"
	externalservices "github.com/ShaiBatonya/starquestDevServer/internal/infrastructure/external_services"
	usecasecontract "github.com/ShaiBatonya/starquestDevServer/internal/usecase/contract"
)

// AuthUseCase implements signup, login, token authentication and the
// password/verification flows.
type AuthUseCase struct {
	userRepo     contract.IUserRepository
	invitationUC usecasecontract.IInvitationUseCase
	hasher       contract.IHasher
	jwtService   JWTService
	emailService contract.IEmailService
	uuidGen      contract.IUUIDGenerator
	randomGen    contract.IRandomGenerator
	validator    usecasecontract.IValidator
	config       usecasecontract.IConfigProvider
	logger       usecasecontract.IAppLogger
}

var _ usecasecontract.IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(
	userRepo contract.IUserRepository,
	invitationUC usecasecontract.IInvitationUseCase,
	hasher contract.IHasher,
	jwtService JWTService,
	emailService contract.IEmailService,
	uuidGen contract.IUUIDGenerator,
	randomGen contract.IRandomGenerator,
	validator usecasecontract.IValidator,
	config usecasecontract.IConfigProvider,
	logger usecasecontract.IAppLogger,
) *AuthUseCase {
	return &AuthUseCase{
		userRepo:     userRepo,
		invitationUC: invitationUC,
		hasher:       hasher,
		jwtService:   jwtService,
		emailService: emailService,
		uuidGen:      uuidGen,
		randomGen:    randomGen,
		validator:    validator,
		config:       config,
		logger:       logger,
	}
}

// Signup registers a new account, then processes any pending workspace
// invitations addressed to the email so the user lands in their
// workspaces immediately. Invitation processing is best effort and never
// fails the registration.
func (uc *AuthUseCase) Signup(ctx context.Context, firstName, lastName, email, password, phoneNumber string) (*entity.User, error) {
	if err := uc.validator.ValidateEmail(email); err != nil {
		return nil, err
	}
	if err := uc.validator.ValidatePasswordStrength(password); err != nil {
		return nil, err
	}

	normalized := entity.NormalizeEmail(email)
	if _, err := uc.userRepo.GetUserByEmail(ctx, normalized); err == nil {
		return nil, apperror.Conflict("user with this email already exists")
	} else if !apperror.IsKind(err, apperror.KindNotFound) {
		return nil, err
	}

	passwordHash, err := uc.hasher.HashPassword(password)
	if err != nil {
		return nil, apperror.Wrap(apperror.KindInternal, "failed to hash password", err)
	}

	now := time.Now()
	user := &entity.User{
		ID:           uc.uuidGen.NewUUID(),
		FirstName:    firstName,
		LastName:     lastName,
		Email:        normalized,
		PasswordHash: passwordHash,
		Role:         entity.DefaultRole(),
		Workspaces:   []entity.WorkspaceRef{},
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if phoneNumber != "" {
		user.PhoneNumber = &phoneNumber
	}

	if err := uc.userRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	if uc.config.GetSendActivationEmail() {
		if err := uc.sendVerificationEmail(ctx, user); err != nil {
			uc.logger.Warnf("failed to send verification email to %s: %v", user.Email, err)
		}
	}

	uc.invitationUC.ProcessPendingInvitations(ctx, user.Email, user.ID)

	// Re-read so the returned user carries workspace refs added by
	// invitation processing.
	fresh, err := uc.userRepo.GetUserByID(ctx, user.ID)
	if err != nil {
		return user, nil
	}
	return fresh, nil
}

func (uc *AuthUseCase) sendVerificationEmail(ctx context.Context, user *entity.User) error {
	code, err := uc.randomGen.GenerateRandomToken(32)
	if err != nil {
		return err
	}
	expires := time.Now().Add(uc.config.GetEmailVerificationCodeExpiry())
	if err := uc.userRepo.SetVerificationCode(ctx, user.ID, uc.hasher.HashString(code), expires); err != nil {
		return err
	}
	content := externalservices.VerificationEmail(user.FirstName, code)
	return uc.emailService.SendEmail(ctx, user.Email, content.Subject, content.Plain, content.HTML)
}

// Login verifies credentials and issues a JWT access token.
func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	user, err := uc.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if apperror.IsKind(err, apperror.KindNotFound) {
			return nil, "", apperror.Unauthorized("incorrect email or password")
		}
		return nil, "", err
	}
	if err := uc.hasher.ComparePasswordHash(password, user.PasswordHash); err != nil {
		return nil, "", apperror.Unauthorized("incorrect email or password")
	}

	token, err := uc.jwtService.GenerateAccessToken(user.ID, user.Role)
	if err != nil {
		return nil, "", apperror.Wrap(apperror.KindInternal, "failed to generate access token", err)
	}
	return user, token, nil
}

// Authenticate resolves an access token to its user. Tokens issued before
// the user's last password change are rejected.
func (uc *AuthUseCase) Authenticate(ctx context.Context, accessToken string) (*entity.User, error) {
	claims, err := uc.jwtService.ParseAccessToken(accessToken)
	if err != nil {
		return nil, apperror.Unauthorized("invalid or expired token")
	}

	user, err := uc.userRepo.GetUserByID(ctx, claims.UserID)
	if err != nil {
		if apperror.IsKind(err, apperror.KindNotFound) {
			return nil, apperror.Unauthorized("the user belonging to this token no longer exists")
		}
		return nil, err
	}
	if claims.IssuedAt != nil && user.ChangedPasswordAfter(claims.IssuedAt.Time) {
		return nil, apperror.Unauthorized("password was changed recently, please log in again")
	}
	return user, nil
}

// VerifyEmail consumes a verification code sent at signup.
func (uc *AuthUseCase) VerifyEmail(ctx context.Context, email, code string) error {
	user, err := uc.userRepo.GetByVerificationCode(ctx, email, uc.hasher.HashString(code), time.Now())
	if err != nil {
		if apperror.IsKind(err, apperror.KindNotFound) {
			return apperror.Validation("verification code is invalid or has expired")
		}
		return err
	}
	return uc.userRepo.MarkEmailVerified(ctx, user.ID)
}

// ForgotPassword issues a reset token. Unknown emails return success so
// the endpoint does not leak account existence.
func (uc *AuthUseCase) ForgotPassword(ctx context.Context, email string) error {
	user, err := uc.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if apperror.IsKind(err, apperror.KindNotFound) {
			uc.logger.Infof("password reset requested for unknown email %s", entity.NormalizeEmail(email))
			return nil
		}
		return err
	}

	token, err := uc.randomGen.GenerateRandomToken(32)
	if err != nil {
		return apperror.Wrap(apperror.KindInternal, "failed to generate reset token", err)
	}
	expires := time.Now().Add(uc.config.GetPasswordResetTokenExpiry())
	if err := uc.userRepo.SetPasswordResetToken(ctx, user.ID, uc.hasher.HashString(token), expires); err != nil {
		return err
	}

	resetURL := fmt.Sprintf("%s/reset-password/%s", uc.config.GetAppBaseURL(), token)
	content := externalservices.PasswordResetEmail(resetURL)
	if err := uc.emailService.SendEmail(ctx, user.Email, content.Subject, content.Plain, content.HTML); err != nil {
		// Clear the token so a failed delivery does not leave a live
		// reset token nobody received.
		if clearErr := uc.userRepo.ClearPasswordResetToken(ctx, user.ID); clearErr != nil {
			uc.logger.Errorf("failed to clear reset token for %s: %v", user.ID, clearErr)
		}
		return apperror.Wrap(apperror.KindInternal, "failed to send password reset email", err)
	}
	return nil
}

// ResetPassword consumes a reset token and sets the new password.
func (uc *AuthUseCase) ResetPassword(ctx context.Context, resetToken, newPassword string) error {
	if err := uc.validator.ValidatePasswordStrength(newPassword); err != nil {
		return err
	}

	user, err := uc.userRepo.GetByPasswordResetToken(ctx, uc.hasher.HashString(resetToken), time.Now())
	if err != nil {
		if apperror.IsKind(err, apperror.KindNotFound) {
			return apperror.Validation("reset token is invalid or has expired")
		}
		return err
	}

	passwordHash, err := uc.hasher.HashPassword(newPassword)
	if err != nil {
		return apperror.Wrap(apperror.KindInternal, "failed to hash password", err)
	}
	return uc.userRepo.UpdatePassword(ctx, user.ID, passwordHash, time.Now())
}

// UpdatePassword changes the password of a logged-in user and returns a
// fresh token, since the old one is invalidated by the change timestamp.
func (uc *AuthUseCase) UpdatePassword(ctx context.Context, userID, currentPassword, newPassword string) (string, error) {
	if err := uc.validator.ValidatePasswordStrength(newPassword); err != nil {
		return "", err
	}

	user, err := uc.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return "", err
	}
	if err := uc.hasher.ComparePasswordHash(currentPassword, user.PasswordHash); err != nil {
		return "", apperror.Unauthorized("current password is incorrect")
	}

	passwordHash, err := uc.hasher.HashPassword(newPassword)
	if err != nil {
		return "", apperror.Wrap(apperror.KindInternal, "failed to hash password", err)
	}
	if err := uc.userRepo.UpdatePassword(ctx, user.ID, passwordHash, time.Now()); err != nil {
		return "", err
	}

	token, err := uc.jwtService.GenerateAccessToken(user.ID, user.Role)
	if err != nil {
		return "", apperror.Wrap(apperror.KindInternal, "failed to generate access token", err)
	}
	return token, nil
}

func (uc *AuthUseCase) GetUserByID(ctx context.Context, userID string) (*entity.User, error) {
	return uc.userRepo.GetUserByID(ctx, userID)
}
