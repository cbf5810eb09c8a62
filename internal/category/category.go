// Package category defines the closed set of deployment categories a mod
// file can be classified into.
package category

// Category identifies where a mod must or may be installed.
// The value of each constant is the wire tag used in the catalog's
// JSON "type" field.
type Category string

const (
	ClientOnly                   Category = "client_only"
	ServerOnly                   Category = "server_only"
	ClientRequiredServerOptional Category = "client_required_server_optional"
	ClientOptionalServerRequired Category = "client_optional_server_required"
	ClientAndServerRequired      Category = "client_and_server_required"
	ClientOptionalServerOptional Category = "client_optional_server_optional"
	Unknown                      Category = "unknown"
)

// FromWireTag maps a catalog "type" string onto a Category.
// Tags outside the recognized set resolve to Unknown.
func FromWireTag(tag string) Category {
	switch Category(tag) {
	case ClientOnly, ServerOnly,
		ClientRequiredServerOptional, ClientOptionalServerRequired,
		ClientAndServerRequired, ClientOptionalServerOptional,
		Unknown:
		return Category(tag)
	default:
		return Unknown
	}
}

// DirName returns the name of the output subdirectory for the category.
func (c Category) DirName() string {
	switch c {
	case ClientOnly:
		return "ClientOnly"
	case ServerOnly:
		return "ServerOnly"
	case ClientRequiredServerOptional:
		return "ClientRequiredServerOptional"
	case ClientOptionalServerRequired:
		return "ClientOptionalServerRequired"
	case ClientAndServerRequired:
		return "ClientAndServerRequired"
	case ClientOptionalServerOptional:
		return "ClientOptionalServerOptional"
	default:
		return "Unknown"
	}
}

// All returns every category in a fixed order.
func All() []Category {
	return []Category{
		ClientOnly,
		ServerOnly,
		ClientRequiredServerOptional,
		ClientOptionalServerRequired,
		ClientAndServerRequired,
		ClientOptionalServerOptional,
		Unknown,
	}
}
