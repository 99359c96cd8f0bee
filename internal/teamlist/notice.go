package teamlist

// NoticeKind distinguishes success toasts from error toasts.
type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeError   NoticeKind = "error"
)

// GenericErrorMessage is the only text users see when a write fails.
const GenericErrorMessage = "Something went wrong. Please try again later."

// Notice is a one-shot notification shown with the next render.
type Notice struct {
	Kind    NoticeKind `json:"kind"`
	Message string     `json:"message"`
}

func successNotice(msg string) Notice {
	return Notice{Kind: NoticeSuccess, Message: msg}
}

func errorNotice() Notice {
	return Notice{Kind: NoticeError, Message: GenericErrorMessage}
}
