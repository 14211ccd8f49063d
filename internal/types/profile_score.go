package types

// ProfileScore is one profile's fit against an analyzed job description.
// Score is normalized by the profile's effective keyword-set size, so large
// profiles carry no inherent advantage.
type ProfileScore struct {
	ProfileID string   `json:"profile_id"`
	Label     string   `json:"label"`
	Domain    string   `json:"domain"`
	Score     float64  `json:"score"`
	Matched   []string `json:"matched,omitempty"`
}
