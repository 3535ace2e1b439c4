package usecase

import (
	"fmt"
	"strconv"
	"strings"

	"pantry-assistant/internal/model"
	"pantry-assistant/internal/nlu"
	"pantry-assistant/internal/pantry"
	"pantry-assistant/pkg/voiceapp"
)

// parseCommand fuses the quantity and name slots into a ParsedCommand.
//
// The platform sometimes fills only one of the two slots, and the numeral may
// land in either, so: when the quantity slot is not a valid integer >= 1 the
// quantity comes from a leading number in the name slot (default 1). When the
// quantity slot is valid, the extractor still runs over the name slot to
// strip a duplicated leading number, but its quantity output is discarded.
func parseCommand(intent *voiceapp.Intent) pantry.ParsedCommand {
	rawName := intent.SlotValue(slotProduct)
	rawQty := strings.TrimSpace(intent.SlotValue(slotQuantity))

	slotQty, err := strconv.Atoi(rawQty)
	if err != nil || slotQty < 1 {
		qty, name := nlu.ExtractQuantityAndName(rawName, 1)
		return pantry.ParsedCommand{Quantity: qty, Name: name}
	}

	_, name := nlu.ExtractQuantityAndName(rawName, slotQty)
	return pantry.ParsedCommand{Quantity: slotQty, Name: name}
}

// readOffset extracts the pagination offset from caller-echoed session
// attributes. JSON numbers arrive as float64; anything absent, malformed, or
// negative defaults to 0.
func readOffset(attrs map[string]any) int {
	raw, ok := attrs[attrOffset]
	if !ok {
		return 0
	}
	var offset int
	switch v := raw.(type) {
	case float64:
		offset = int(v)
	case int:
		offset = v
	default:
		return 0
	}
	if offset < 0 {
		return 0
	}
	return offset
}

// renderItem speaks one pantry item ("2 pepinos").
func renderItem(item model.PantryItem) string {
	return fmt.Sprintf("%d %s", item.Quantity, item.Name)
}
