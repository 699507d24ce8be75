package utils_test

import (
	"testing"

	"github.com/deadtood/appcore/internal/utils"
	"github.com/stretchr/testify/require"
)

func TestPtrValue(t *testing.T) {
	p := utils.Ptr("high")
	require.NotNil(t, p)
	require.Equal(t, "high", utils.Value(p))

	var nilInt *int
	require.Equal(t, 0, utils.Value(nilInt))
}
