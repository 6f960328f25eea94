package request

type HelpfulPatch struct {
	Helpful int `json:"helpful"`
}
