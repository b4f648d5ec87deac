package externalservices

import (
	"fmt"
)

// EmailContent is a rendered message ready for delivery.
type EmailContent struct {
	Subject string
	Plain   string
	HTML    string
}

// InvitationEmail renders the message sent to an invitee. New users get
// a registration link carrying the invitation token; existing users get
// a direct accept link.
func InvitationEmail(isNewUser bool, workspaceName, token, baseURL string) EmailContent {
	var link, action string
	if isNewUser {
		link = fmt.Sprintf("%s/register?invitation=%s", baseURL, token)
		action = "create your account and join"
	} else {
		link = fmt.Sprintf("%s/workspace/accept-invitation/%s", baseURL, token)
		action = "accept the invitation and join"
	}
	plain := fmt.Sprintf(
		"You have been invited to the %s workspace on StarQuest.\n\nFollow this link to %s: %s\n\nIf you were not expecting this invitation you can ignore this email.",
		workspaceName, action, link,
	)
	html := fmt.Sprintf(
		`<h2>You're invited to %s</h2><p>You have been invited to join the <b>%s</b> workspace on StarQuest.</p><p><a href="%s">Click here to %s</a></p><p>If you were not expecting this invitation you can ignore this email.</p>`,
		workspaceName, workspaceName, link, action,
	)
	return EmailContent{
		Subject: fmt.Sprintf("Invitation to join %s on StarQuest", workspaceName),
		Plain:   plain,
		HTML:    html,
	}
}

// InviterNotificationEmail tells the inviter whether their invitation
// went out.
func InviterNotificationEmail(sent bool, inviteeEmail string) EmailContent {
	if sent {
		return EmailContent{
			Subject: "Your invitation was sent",
			Plain:   fmt.Sprintf("Your invitation to %s was sent successfully.", inviteeEmail),
			HTML:    fmt.Sprintf("<p>Your invitation to <b>%s</b> was sent successfully.</p>", inviteeEmail),
		}
	}
	return EmailContent{
		Subject: "Your invitation could not be delivered",
		Plain:   fmt.Sprintf("We could not deliver your invitation to %s. Please try again later.", inviteeEmail),
		HTML:    fmt.Sprintf("<p>We could not deliver your invitation to <b>%s</b>. Please try again later.</p>", inviteeEmail),
	}
}

// InviteeJoinedEmail congratulates a member who completed joining.
func InviteeJoinedEmail(inviteeName, workspaceName string) EmailContent {
	return EmailContent{
		Subject: fmt.Sprintf("Welcome to %s", workspaceName),
		Plain:   fmt.Sprintf("Hi %s,\n\nYou have successfully joined the %s workspace. Your quest awaits!", inviteeName, workspaceName),
		HTML:    fmt.Sprintf("<p>Hi %s,</p><p>You have successfully joined the <b>%s</b> workspace. Your quest awaits!</p>", inviteeName, workspaceName),
	}
}

// InviterJoinedNotificationEmail tells the inviter their invitee joined.
func InviterJoinedNotificationEmail(inviterName, inviteeName, workspaceName string) EmailContent {
	return EmailContent{
		Subject: fmt.Sprintf("%s joined %s", inviteeName, workspaceName),
		Plain:   fmt.Sprintf("Hi %s,\n\n%s has accepted your invitation and joined the %s workspace.", inviterName, inviteeName, workspaceName),
		HTML:    fmt.Sprintf("<p>Hi %s,</p><p><b>%s</b> has accepted your invitation and joined the <b>%s</b> workspace.</p>", inviterName, inviteeName, workspaceName),
	}
}

// VerificationEmail carries the signup verification code.
func VerificationEmail(name, code string) EmailContent {
	return EmailContent{
		Subject: "Please verify your account",
		Plain:   fmt.Sprintf("Hi %s,\n\nYour StarQuest verification code is: %s\n\nThe code expires shortly, so use it soon.", name, code),
		HTML:    fmt.Sprintf("<p>Hi %s,</p><p>Your StarQuest verification code is: <b>%s</b></p><p>The code expires shortly, so use it soon.</p>", name, code),
	}
}

// PasswordResetEmail carries the reset link.
func PasswordResetEmail(resetURL string) EmailContent {
	return EmailContent{
		Subject: "Your password reset token (valid for 10 min)",
		Plain:   fmt.Sprintf("Forgot your password? Submit a new one at: %s\n\nIf you didn't request a reset, ignore this email.", resetURL),
		HTML:    fmt.Sprintf(`<p>Forgot your password? <a href="%s">Reset it here</a>.</p><p>If you didn't request a reset, ignore this email.</p>`, resetURL),
	}
}
