// ABOUTME: Version constants for the rawplay tool
// ABOUTME: Identifies the product to audio backends and logs
package version

const (
	// Version is the current release version.
	Version = "0.1.0"

	// Product is the product name reported to audio backends.
	Product = "rawplay"

	// Manufacturer identifies the project.
	Manufacturer = "rawaudio"
)
