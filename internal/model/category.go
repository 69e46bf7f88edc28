package model

type Category struct {
	ID   string `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
	Key  string `db:"key" json:"key"`
	Icon string `db:"icon" json:"icon"`
}

// DefaultIcon is rendered when a stored icon name is no longer in the registry.
const DefaultIcon = "Grid3X3"

// iconRegistry is the fixed set of icon identifiers the dashboard may assign
// to categories and services. Unknown keys are rejected at data entry and fall
// back to DefaultIcon on read.
var iconRegistry = map[string]bool{
	"Cpu":        true,
	"Brain":      true,
	"Wifi":       true,
	"Code":       true,
	"Smartphone": true,
	"Settings":   true,
	"Palette":    true,
	"Monitor":    true,
	"Database":   true,
	"Cloud":      true,
	"Shield":     true,
	"Zap":        true,
	"Globe":      true,
	"Laptop":     true,
	"Tablet":     true,
	"Watch":      true,
	"Headphones": true,
	"Camera":     true,
	"Grid3X3":    true,
	"Tv":         true,
	"Phone":      true,
	"MapPin":     true,
	"Calendar":   true,
	"Search":     true,
	"User":       true,
	"Heart":      true,
	"Loader":     true,
	"Bell":       true,
	"Folder":     true,
	"FileText":   true,
	"Unlock":     true,
	"Eye":        true,
	"EyeOff":     true,
}

// ValidIcon reports whether name is part of the fixed icon registry.
func ValidIcon(name string) bool {
	return iconRegistry[name]
}

// IconOrDefault returns name if it is a registered icon, DefaultIcon otherwise.
func IconOrDefault(name string) string {
	if iconRegistry[name] {
		return name
	}
	return DefaultIcon
}
