//go:build wireinject
// +build wireinject

package wire

import (
	"github.com/google/wire"

	"github.com/Srinivas2193/AI-PR-Reviewer/internal/app"
)

func InitializeApp() (*app.App, func(), error) {
	wire.Build(AppSet)
	return &app.App{}, nil, nil
}
