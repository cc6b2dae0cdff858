package cli

import (
	"testing"

	"uniadvisor_backend/internal/catalog"
	"uniadvisor_backend/internal/models"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileFromFlags(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	addProfileFlags(cmd)

	require.NoError(t, cmd.Flags().Set("gpa", "3.5"))
	require.NoError(t, cmd.Flags().Set("country", "Germany"))

	req, err := profileFromFlags(cmd)
	require.NoError(t, err)
	require.NotNil(t, req.GPA)
	assert.Equal(t, 3.5, *req.GPA)
	assert.Nil(t, req.TestScore, "unset flag stays absent")
	assert.Nil(t, req.Budget)
	assert.Equal(t, "Germany", req.Country)
}

func TestProfileFromFlagsRejectsNegative(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	addProfileFlags(cmd)

	require.NoError(t, cmd.Flags().Set("budget", "-1"))
	_, err := profileFromFlags(cmd)
	assert.Error(t, err)
}

func TestValidateOptionalNumber(t *testing.T) {
	assert.NoError(t, validateOptionalNumber(""))
	assert.NoError(t, validateOptionalNumber(" 6.5 "))
	assert.Error(t, validateOptionalNumber("abc"))
	assert.Error(t, validateOptionalNumber("-2"))
}

func TestCatalogCountries(t *testing.T) {
	snap := catalog.NewSnapshot("test", []models.University{
		{Name: "B", Country: "Spain"},
		{Name: "A", Country: "France"},
		{Name: "C", Country: "Spain"},
	}, nil, nil)

	assert.Equal(t, []string{promptAnyCountry, "France", "Spain"}, catalogCountries(snap))
}

func TestCommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"serve", "migrate", "verify", "recommend", "version"} {
		assert.True(t, names[want], want)
	}
}
