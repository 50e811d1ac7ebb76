package rtconfigs

import (
	"github.com/reusee/scriptrt/cmds"
	"github.com/reusee/scriptrt/configs"
	"github.com/reusee/scriptrt/logs"
	"github.com/reusee/scriptrt/texts"
	"github.com/reusee/scriptrt/vars"
)

// Culture is the BCP 47 tag of the default culture.
type Culture string

var cultureFlag = cmds.Var[string]("-culture")

func (Module) Culture(
	loader configs.Loader,
) Culture {
	return Culture(vars.FirstNonZero(
		*cultureFlag,
		configs.First[string](loader, "culture"),
		"und",
	))
}

// Comparer is the culture-aware comparer for Culture. An unknown tag falls
// back to the invariant comparer.
func (Module) Comparer(
	culture Culture,
	logger logs.Logger,
) texts.Comparer {
	cmp, err := texts.ForCulture(string(culture))
	if err != nil {
		logger.Warn("bad culture, using invariant",
			"culture", culture,
			"error", err,
		)
		return texts.Default
	}
	return cmp
}
