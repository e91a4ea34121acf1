package models

// NavItem is one role-gated entry of the sidebar menu. LabelKey is a
// translation dictionary path resolved in the session's language.
type NavItem struct {
	LabelKey string   `json:"label_key"`
	Label    string   `json:"label,omitempty"`
	Icon     string   `json:"icon"`
	Path     string   `json:"path"`
	Roles    []string `json:"-"`
	Badge    string   `json:"badge,omitempty"`
}
