package shopsdk

import (
	"context"
	"net/http"
)

// GetProfile retrieves the authoritative profile for the session's token.
func (s *Session) GetProfile(ctx context.Context) (*Profile, error) {
	var p Profile
	if err := s.call(ctx, http.MethodGet, "Profile/me", nil, nil, &p, "Failed to load profile."); err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdateProfile changes the username and phone.
func (s *Session) UpdateProfile(ctx context.Context, req UpdateProfileRequest) error {
	return s.call(ctx, http.MethodPut, "Profile", nil, req, nil, "Update profile failed.")
}

// ChangeEmail changes the account email.
func (s *Session) ChangeEmail(ctx context.Context, newEmail string) error {
	return s.call(ctx, http.MethodPut, "Profile/email", nil, ChangeEmailRequest{NewEmail: newEmail}, nil, "Change email failed.")
}
