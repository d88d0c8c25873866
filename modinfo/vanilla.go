// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lspk

package modinfo

import "slices"

// BaseUUID is the module UUID of the base game content. A descriptor carrying
// it is never produced.
const BaseUUID = "28ac9ce2-2aba-8cda-b3b5-6e922f71b6b8"

// vanillaUUIDs lists modules shipped with the game.
var vanillaUUIDs = []string{
	BaseUUID,                               // GustavDev
	"991c9c7a-fb80-40cb-8f0d-b92d4e80e9b1", // Gustav
	"ed539163-bb70-431b-96a7-f5b2eda5376b", // Shared
	"3d0c5ff8-c95d-c907-ff3e-34b204f1c630", // SharedDev
	"e842840a-2449-588c-b0c4-22122cfce31b", // FW3
	"9dff4c3b-fda7-43de-a763-ce1383039999", // Engine
	"b176a0ac-d79f-ed9d-5a87-5c2c80874e10", // DiceSet_01
	"e0a4d990-7b9b-8fa9-d7c6-04017c6cf5b1", // DiceSet_02
	"77a2155f-4b35-4f0c-e7ff-4338f91426a4", // DiceSet_03
	"6efc8f44-cc2a-0273-d4b1-681d3faa411b", // DiceSet_04
	"ee4989eb-aab8-968f-8674-812ea2f4bfd7", // DiceSet_06
	"b77b6210-ac50-4cb1-a3d5-5702fb9c744c", // Honour
	"767d0062-d82c-279c-e16b-dfee7fe94cdd", // HonourX
	"630daa32-70f8-3da5-41b9-154fe8410236", // MainUI
	"ee5a55ff-eb38-0b27-c5b0-f358dc306d34", // ModBrowser
}

// IsVanilla reports whether uuid belongs to base game content.
func IsVanilla(uuid string) bool {
	return slices.Contains(vanillaUUIDs, uuid)
}

// VanillaUUIDs returns a copy of the built-in module UUID set.
func VanillaUUIDs() []string {
	return slices.Clone(vanillaUUIDs)
}
