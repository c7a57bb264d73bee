package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/AntonioJCosta/itemalias/internal/core/domain/itemtype"
)

type idRange struct {
	id     int
	subMin int
	subMax int
}

// parseIDRange reads "id", "id:data" or "id:min-max". Without data the range
// is unrestricted (-1, -1).
func parseIDRange(input string) (idRange, error) {
	trimmed := strings.TrimSpace(input)
	idPart, dataPart, hasData := strings.Cut(trimmed, ":")

	id, err := strconv.Atoi(idPart)
	if err != nil || id < 0 {
		return idRange{}, fmt.Errorf("invalid id: %s", input)
	}
	target := idRange{id: id, subMin: itemtype.Any, subMax: itemtype.Any}
	if !hasData {
		return target, nil
	}

	if strings.Contains(dataPart, "-") {
		rangeParts := strings.SplitN(dataPart, "-", 2)
		start, err1 := strconv.Atoi(rangeParts[0])
		end, err2 := strconv.Atoi(rangeParts[1])
		if err1 != nil || err2 != nil || start < 0 || end < start || end > itemtype.MaxSubValue {
			return idRange{}, fmt.Errorf("invalid data range (max %d): %s", itemtype.MaxSubValue, dataPart)
		}
		target.subMin, target.subMax = start, end
		return target, nil
	}

	num, err := strconv.Atoi(dataPart)
	if err != nil || num < 0 || num > itemtype.MaxSubValue {
		return idRange{}, fmt.Errorf("invalid data value (max %d): %s", itemtype.MaxSubValue, dataPart)
	}
	target.subMin, target.subMax = num, num
	return target, nil
}
