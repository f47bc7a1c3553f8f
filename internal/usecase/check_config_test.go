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

func TestCheckConfig(t *testing.T) {
	ctx := context.Background()
	warning := config.Finding{Severity: config.SeverityWarning, Subject: "ETHERSCAN_API_KEY", Message: "not set"}
	info := config.Finding{Severity: config.SeverityInfo, Subject: "PRIVATE_KEY", Message: "signer address 0x..."}

	newInspector := func(cfg *config.RuntimeConfig, findings []config.Finding) *MockCredentialInspector {
		inspector := new(MockCredentialInspector)
		inspector.On("Inspect", ctx, cfg.Secrets, cfg.Root).Return(findings)
		return inspector
	}

	t.Run("warnings are reported without failing", func(t *testing.T) {
		cfg := testRuntimeConfig()
		inspector := newInspector(cfg, []config.Finding{info, warning})

		result, err := usecase.NewCheckConfig(cfg, inspector).Run(ctx, usecase.CheckConfigParams{})
		require.NoError(t, err)

		assert.Len(t, result.Findings, 2)
		assert.Equal(t, []config.Finding{warning}, result.Warnings())
		inspector.AssertExpectations(t)
	})

	t.Run("strict fails on warnings", func(t *testing.T) {
		cfg := testRuntimeConfig()
		inspector := newInspector(cfg, []config.Finding{warning})

		result, err := usecase.NewCheckConfig(cfg, inspector).Run(ctx, usecase.CheckConfigParams{Strict: true})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrCheckFailed))
		require.NotNil(t, result)
		assert.Len(t, result.Findings, 1)
	})

	t.Run("strict passes with info only", func(t *testing.T) {
		cfg := testRuntimeConfig()
		inspector := newInspector(cfg, []config.Finding{info})

		_, err := usecase.NewCheckConfig(cfg, inspector).Run(ctx, usecase.CheckConfigParams{Strict: true})
		assert.NoError(t, err)
	})
}

func TestInitEnv(t *testing.T) {
	ctx := context.Background()

	t.Run("writes template", func(t *testing.T) {
		writer := new(MockEnvTemplateWriter)
		writer.On("WriteTemplate", ctx, false).Return("/project/.env", nil)

		result, err := usecase.NewInitEnv(testRuntimeConfig(), writer, nil).Run(ctx, usecase.InitEnvParams{})
		require.NoError(t, err)

		assert.Equal(t, "/project/.env", result.Path)
		assert.False(t, result.Cancelled)
		writer.AssertExpectations(t)
	})

	t.Run("existing file in non-interactive mode", func(t *testing.T) {
		cfg := testRuntimeConfig()
		cfg.NonInteractive = true
		writer := new(MockEnvTemplateWriter)
		writer.On("WriteTemplate", ctx, false).Return("/project/.env", domain.ErrAlreadyExists)
		selector := new(MockInteractiveSelector)

		_, err := usecase.NewInitEnv(cfg, writer, selector).Run(ctx, usecase.InitEnvParams{})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrAlreadyExists))
		selector.AssertNotCalled(t, "Confirm", mock.Anything, mock.Anything)
	})

	t.Run("existing file overwritten after confirmation", func(t *testing.T) {
		writer := new(MockEnvTemplateWriter)
		writer.On("WriteTemplate", ctx, false).Return("/project/.env", domain.ErrAlreadyExists)
		writer.On("WriteTemplate", ctx, true).Return("/project/.env", nil)
		selector := new(MockInteractiveSelector)
		selector.On("Confirm", ctx, "Overwrite existing .env").Return(true, nil)

		result, err := usecase.NewInitEnv(testRuntimeConfig(), writer, selector).Run(ctx, usecase.InitEnvParams{})
		require.NoError(t, err)

		assert.False(t, result.Cancelled)
		writer.AssertExpectations(t)
		selector.AssertExpectations(t)
	})

	t.Run("existing file kept when declined", func(t *testing.T) {
		writer := new(MockEnvTemplateWriter)
		writer.On("WriteTemplate", ctx, false).Return("/project/.env", domain.ErrAlreadyExists)
		selector := new(MockInteractiveSelector)
		selector.On("Confirm", ctx, mock.Anything).Return(false, nil)

		result, err := usecase.NewInitEnv(testRuntimeConfig(), writer, selector).Run(ctx, usecase.InitEnvParams{})
		require.NoError(t, err)

		assert.True(t, result.Cancelled)
		writer.AssertNotCalled(t, "WriteTemplate", ctx, true)
	})

	t.Run("force skips the prompt", func(t *testing.T) {
		writer := new(MockEnvTemplateWriter)
		writer.On("WriteTemplate", ctx, true).Return("/project/.env", nil)
		selector := new(MockInteractiveSelector)

		_, err := usecase.NewInitEnv(testRuntimeConfig(), writer, selector).Run(ctx, usecase.InitEnvParams{Force: true})
		require.NoError(t, err)
		selector.AssertNotCalled(t, "Confirm", mock.Anything, mock.Anything)
	})
}
