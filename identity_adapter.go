package meet

// ProfileIdentity adapts a UserProfile into the Identity interface.
type ProfileIdentity struct {
	profile *UserProfile
}

// NewIdentityFromProfile returns an Identity adapter for the provided profile.
func NewIdentityFromProfile(profile *UserProfile) Identity {
	if profile == nil {
		return nil
	}
	return ProfileIdentity{profile: profile}
}

// ID returns the profile's uid.
func (p ProfileIdentity) ID() string {
	if p.profile == nil {
		return ""
	}
	return p.profile.UID
}

// Username returns the profile's display name.
func (p ProfileIdentity) Username() string {
	if p.profile == nil {
		return ""
	}
	return p.profile.DisplayName
}

// Email returns the profile's email address.
func (p ProfileIdentity) Email() string {
	if p.profile == nil {
		return ""
	}
	return p.profile.Email
}

// Role returns the profile's role as a string.
func (p ProfileIdentity) Role() string {
	if p.profile == nil {
		return ""
	}
	return string(p.profile.Role)
}

// CallerIdentity is a plain Identity carrier for authentication layers that
// verify callers outside this package (e.g. a JWT middleware).
type CallerIdentity struct {
	UserID    string
	Name      string
	EmailAddr string
	UserRole  string
}

func (c CallerIdentity) ID() string       { return c.UserID }
func (c CallerIdentity) Username() string { return c.Name }
func (c CallerIdentity) Email() string    { return c.EmailAddr }
func (c CallerIdentity) Role() string     { return c.UserRole }
