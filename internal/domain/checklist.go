package domain

// ChecklistItem pairs a required entry name with its presence.
type ChecklistItem struct {
	Name    string
	Present bool
}

// PackageChecklist is the required-files result for one package. Items
// keep the configured order.
type PackageChecklist struct {
	Items   []ChecklistItem
	Package string
}

// Missing returns the number of absent items.
func (c PackageChecklist) Missing() int {
	missing := 0
	for _, item := range c.Items {
		if !item.Present {
			missing++
		}
	}
	return missing
}
