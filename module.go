package mall

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/0xalexb/mall/accessor"

	"go.uber.org/fx"
)

// ErrEmptyName is returned when the module name is empty.
var ErrEmptyName = errors.New("module name must not be empty")

// NewModule creates an Fx module that provides a named *accessor.Accessor
// loaded from the YAML file at path. The name is used as both the module
// name and the DI named tag for the accessor. If the container provides a
// *slog.Logger, it receives the accessor's diagnostics; otherwise the
// process default logger is used.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule(name, path string) fx.Option {
	if name == "" {
		return fx.Error(ErrEmptyName)
	}

	return fx.Module(name,
		fx.Provide(
			fx.Annotate(
				func(logger *slog.Logger) (*accessor.Accessor, error) {
					if logger == nil {
						return Load(path)
					}

					return Load(path, WithLogger(logger))
				},
				fx.ParamTags(`optional:"true"`),
				fx.ResultTags(fmt.Sprintf(`name:"%s"`, name)),
			),
		),
	)
}
