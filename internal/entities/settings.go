// Package entities contains core business entities.
package entities

// Theme enumerates UI theme preferences persisted per account.
type Theme string

const (
	// ThemeDark is the default for new accounts.
	ThemeDark Theme = "dark"
	// ThemeLight is the alternate preference.
	ThemeLight Theme = "light"
)

// Settings is the per-account application state.
type Settings struct {
	OwnerID string
	Theme   Theme
}

// ValidTheme reports whether t is a known theme value.
func ValidTheme(t Theme) bool {
	return t == ThemeDark || t == ThemeLight
}
