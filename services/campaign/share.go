package campaign

// ShareResult is how a native share attempt ended on the client.
type ShareResult string

const (
	ShareCompleted ShareResult = "shared"
	ShareAborted   ShareResult = "aborted"
	ShareFailed    ShareResult = "failed"
)

// ShareAction tells the client what to do next.
type ShareAction struct {
	CopyLink bool   `json:"copyLink"`
	Toast    string `json:"toast,omitempty"`
}

// ShareOutcome maps a share result to a follow-up. A cancelled share sheet
// is silent; any other failure falls back to copying the link.
func ShareOutcome(result ShareResult) ShareAction {
	switch result {
	case ShareCompleted:
		return ShareAction{Toast: "Thanks for sharing!"}
	case ShareAborted:
		return ShareAction{}
	default:
		return ShareAction{CopyLink: true, Toast: "Link copied to clipboard"}
	}
}
