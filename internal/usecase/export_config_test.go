package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/chaincfg/internal/domain"
	"github.com/trebuchet-org/chaincfg/internal/domain/config"
	"github.com/trebuchet-org/chaincfg/internal/usecase"
)

func TestExportConfig(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults to json and redacts", func(t *testing.T) {
		cfg := testRuntimeConfig()
		encoder := new(MockConfigEncoder)
		encoder.On("Encode", mock.Anything, mock.MatchedBy(func(root *config.RootConfig) bool {
			return root.Networks["mainnet"].Accounts[0] == config.RedactedAccount
		}), "json").Return(`{"ok":true}`, nil)

		result, err := usecase.NewExportConfig(cfg, encoder).Run(ctx, usecase.ExportConfigParams{Format: "text"})
		require.NoError(t, err)

		assert.Equal(t, "json", result.Format)
		assert.Equal(t, `{"ok":true}`, string(result.Data))
		encoder.AssertExpectations(t)
	})

	t.Run("reveal passes the resolved config", func(t *testing.T) {
		cfg := testRuntimeConfig()
		encoder := new(MockConfigEncoder)
		encoder.On("Encode", mock.Anything, cfg.Root, "foundry").Return("", nil)

		result, err := usecase.NewExportConfig(cfg, encoder).Run(ctx, usecase.ExportConfigParams{Format: "foundry", Reveal: true})
		require.NoError(t, err)

		assert.Equal(t, "foundry", result.Format)
		encoder.AssertExpectations(t)
	})

	t.Run("encoder errors are wrapped", func(t *testing.T) {
		encoder := new(MockConfigEncoder)
		encoder.On("Encode", mock.Anything, mock.Anything, "xml").Return("", domain.ErrUnsupportedFormat)

		_, err := usecase.NewExportConfig(testRuntimeConfig(), encoder).Run(ctx, usecase.ExportConfigParams{Format: "xml"})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrUnsupportedFormat))
	})
}
