package cmd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatRow_ValuesAlign(t *testing.T) {
	// Short and long labels must put the value in the same column.
	short := statRow("Owner", "0xaaa")
	long := statRow("Withdrawal Fee", "0xbbb")
	assert.Equal(t, strings.Index(short, "0xaaa"), strings.Index(long, "0xbbb"))
}

func TestStatRow_WidestLabelFits(t *testing.T) {
	row := statRow("Withdrawal Fee", "1.00%")
	assert.Contains(t, row, "Withdrawal Fee")
	assert.Contains(t, row, "1.00%")
}
