package kernelconfigs

import (
	"github.com/dwido/yooper/configs"
)

// ZoneSpec describes a memory zone claimed at startup.
type ZoneSpec struct {
	Label  string `json:"label"`
	Size   int    `json:"size"`
	Sacred bool   `json:"sacred"`
}

type SeedZones []ZoneSpec

type SeedProcesses []string

func (Module) SeedZones(
	loader configs.Loader,
) SeedZones {
	if zones := configs.First[[]ZoneSpec](loader, "zones"); len(zones) > 0 {
		return SeedZones(zones)
	}
	return SeedZones{
		{Label: "KERNEL_CORE", Size: 1 << 20, Sacred: true},
		{Label: "USER_SPACE", Size: 2 << 20},
		{Label: "GAME_CACHE", Size: 512 << 10},
	}
}

func (Module) SeedProcesses(
	loader configs.Loader,
) SeedProcesses {
	if names := configs.First[[]string](loader, "processes"); len(names) > 0 {
		return SeedProcesses(names)
	}
	return SeedProcesses{
		"init_daemon",
		"thor_ai",
		"loki_hunter",
	}
}
