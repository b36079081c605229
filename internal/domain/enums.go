package domain

// ContentType identifies the kind of content entity a submission produces.
type ContentType string

const (
	ContentTypePoem     ContentType = "poem"
	ContentTypeBlogPost ContentType = "blog_post"
)

func (t ContentType) String() string { return string(t) }

func (t ContentType) IsValid() bool {
	switch t {
	case ContentTypePoem, ContentTypeBlogPost:
		return true
	}
	return false
}

// SubmissionStatus represents the moderation state of a submission.
// A submission starts pending and moves at most once to approved or rejected.
type SubmissionStatus string

const (
	SubmissionStatusPending  SubmissionStatus = "pending"
	SubmissionStatusApproved SubmissionStatus = "approved"
	SubmissionStatusRejected SubmissionStatus = "rejected"
)

func (s SubmissionStatus) String() string { return string(s) }

func (s SubmissionStatus) IsValid() bool {
	switch s {
	case SubmissionStatusPending, SubmissionStatusApproved, SubmissionStatusRejected:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is allowed.
func (s SubmissionStatus) IsTerminal() bool {
	return s == SubmissionStatusApproved || s == SubmissionStatusRejected
}

// ReviewDecision is an admin's verdict on a pending submission.
type ReviewDecision string

const (
	ReviewDecisionApprove ReviewDecision = "approve"
	ReviewDecisionReject  ReviewDecision = "reject"
)

func (d ReviewDecision) String() string { return string(d) }

func (d ReviewDecision) IsValid() bool {
	switch d {
	case ReviewDecisionApprove, ReviewDecisionReject:
		return true
	}
	return false
}

// Status returns the submission status this decision resolves to.
func (d ReviewDecision) Status() SubmissionStatus {
	if d == ReviewDecisionApprove {
		return SubmissionStatusApproved
	}
	return SubmissionStatusRejected
}

// PublishFilter narrows content listings by publication state.
type PublishFilter string

const (
	PublishFilterAll       PublishFilter = "all"
	PublishFilterPublished PublishFilter = "published"
	PublishFilterDraft     PublishFilter = "draft"
)

func (f PublishFilter) String() string { return string(f) }

func (f PublishFilter) IsValid() bool {
	switch f {
	case PublishFilterAll, PublishFilterPublished, PublishFilterDraft:
		return true
	}
	return false
}

// AuthMethodType identifies how a user authenticates.
type AuthMethodType string

const (
	AuthMethodPassword AuthMethodType = "password"
	AuthMethodGoogle   AuthMethodType = "google"
)

func (m AuthMethodType) String() string { return string(m) }

func (m AuthMethodType) IsValid() bool {
	switch m {
	case AuthMethodPassword, AuthMethodGoogle:
		return true
	}
	return false
}

// UserRole represents the authorization level of a user.
type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleUser, UserRoleAdmin:
		return true
	}
	return false
}

func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}
