package models

// NoticeLevel selects how a notice is presented
type NoticeLevel int

const (
	NoticeInfo NoticeLevel = iota
	NoticeWarning
	NoticeError
)

func (l NoticeLevel) String() string {
	switch l {
	case NoticeWarning:
		return "Warning"
	case NoticeError:
		return "Error"
	default:
		return "Information"
	}
}

// NoticeKind identifies which user-facing signal a notice carries
type NoticeKind string

const (
	NoticeFolderCreated NoticeKind = "folder_created"
	NoticeNoFiles       NoticeKind = "no_files"
	NoticeScanFailed    NoticeKind = "scan_failed"
	NoticeNoSelection   NoticeKind = "no_selection"
	NoticeNoData        NoticeKind = "no_data"
	NoticeFileMissing   NoticeKind = "file_missing"
	NoticeReadFailed    NoticeKind = "read_failed"
)

// Notice is a message the presentation layer shows verbatim
type Notice struct {
	Kind    NoticeKind
	Level   NoticeLevel
	Title   string
	Message string
}
