package types

type ArchivedFile string

const (
	FileScoreSheet ArchivedFile = "score_sheet"
)
