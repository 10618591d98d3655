// Package schemas holds the reconciliation descriptors of the supported
// Redfish resource types.
package schemas

import (
	"errors"
	"fmt"
	"sort"

	"github.com/device-management-toolkit/redfish-sync/internal/entity"
	"github.com/device-management-toolkit/redfish-sync/internal/usecase/reconcile"
)

// ErrUnknownSchema -.
var ErrUnknownSchema = errors.New("schemas - unknown schema")

var registry = map[string]func() *reconcile.Schema{
	"Bios":           Bios,
	"ComputerSystem": ComputerSystem,
	"Memory":         Memory,
	"SecureBoot":     SecureBoot,
}

// ByName returns a fresh descriptor for name.
func ByName(name string) (*reconcile.Schema, error) {
	build, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSchema, name)
	}

	return build(), nil
}

// Names lists the supported schemas, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}

	sort.Strings(names)

	return names
}

// Bios -.
func Bios() *reconcile.Schema {
	return &reconcile.Schema{
		Name:      "Bios",
		Version:   "v1_1_0",
		ODataType: "#Bios.v1_1_0.Bios",
		Root:      "/Bios",
		Template:  `{"Attributes":{}}`,
		Properties: []reconcile.Property{
			{Path: []string{"AttributeRegistry"}, Kind: entity.KindString, ReadOnly: true},
			{Path: []string{"Attributes"}, Kind: entity.KindVague},
		},
	}
}

// ComputerSystem -.
func ComputerSystem() *reconcile.Schema {
	return &reconcile.Schema{
		Name:       "ComputerSystem",
		Version:    "v1_13_0",
		ODataType:  "#ComputerSystem.v1_13_0.ComputerSystem",
		Root:       "/Systems",
		Collection: true,
		Template:   `{}`,
		Properties: []reconcile.Property{
			{Path: []string{"AssetTag"}, Kind: entity.KindString},
			{Path: []string{"HostName"}, Kind: entity.KindString},
			{Path: []string{"IndicatorLED"}, Kind: entity.KindString},
			{Path: []string{"PowerState"}, Kind: entity.KindString, ReadOnly: true},
			{Path: []string{"Boot", "BootSourceOverrideEnabled"}, Kind: entity.KindString},
			{Path: []string{"Boot", "BootSourceOverrideTarget"}, Kind: entity.KindString},
			{Path: []string{"Boot", "BootSourceOverrideMode"}, Kind: entity.KindString},
			{Path: []string{"Boot", "BootOrder"}, Kind: entity.KindStringArray},
			{Path: []string{"Boot", "AutomaticRetryAttempts"}, Kind: entity.KindInteger},
			{Path: []string{"HostingRoles"}, Kind: entity.KindUnimplemented},
			{Path: []string{"PCIeDevices"}, Kind: entity.KindUnimplemented},
			{Path: []string{"TrustedModules"}, Kind: entity.KindUnimplemented},
		},
	}
}

// Memory -.
func Memory() *reconcile.Schema {
	return &reconcile.Schema{
		Name:       "Memory",
		Version:    "v1_7_0",
		ODataType:  "#Memory.v1_7_0.Memory",
		Root:       "/Memory",
		Collection: true,
		Template:   `{}`,
		Properties: []reconcile.Property{
			{Path: []string{"Enabled"}, Kind: entity.KindBoolean},
			{Path: []string{"AllowedSpeedsMHz"}, Kind: entity.KindIntegerArray, ReadOnly: true},
			{Path: []string{"OperatingSpeedMhz"}, Kind: entity.KindInteger},
			{Path: []string{"CapacityMiB"}, Kind: entity.KindInteger, ReadOnly: true},
			{Path: []string{"Regions"}, Kind: entity.KindUnimplemented},
			{Path: []string{"SecurityStates"}, Kind: entity.KindUnimplemented},
			{Path: []string{"OperatingMemoryModes"}, Kind: entity.KindUnimplemented},
		},
	}
}

// SecureBoot -.
func SecureBoot() *reconcile.Schema {
	return &reconcile.Schema{
		Name:      "SecureBoot",
		Version:   "v1_1_0",
		ODataType: "#SecureBoot.v1_1_0.SecureBoot",
		Root:      "/SecureBoot",
		Template:  `{}`,
		Properties: []reconcile.Property{
			{Path: []string{"SecureBootEnable"}, Kind: entity.KindBoolean},
			{Path: []string{"SecureBootMode"}, Kind: entity.KindString, ReadOnly: true},
			{Path: []string{"SecureBootCurrentBoot"}, Kind: entity.KindString, ReadOnly: true},
		},
	}
}
