package recipes

import (
	"os"

	"github.com/DjordjeVuckovic/recipes/pkg/pagination"
	"github.com/DjordjeVuckovic/recipes/pkg/utils"
)

const (
	DefaultPageSize    = 6
	DefaultAPIPageSize = 5
)

// Config holds the page sizes of each kind of listing. Pages and the API are
// paginated independently so either can be tuned without touching the other.
type Config struct {
	PageSize    int
	APIPageSize int
	Window      int
}

func LoadConfig() Config {
	return Config{
		PageSize:    utils.EnvInt(os.Getenv("RECIPES_PER_PAGE"), DefaultPageSize),
		APIPageSize: utils.EnvInt(os.Getenv("RECIPES_API_PAGE_SIZE"), DefaultAPIPageSize),
		Window:      utils.EnvInt(os.Getenv("PAGINATION_WINDOW"), pagination.WindowDefaultSize),
	}
}

func (c Config) pageRequest(rawPage string) pagination.Request {
	return pagination.NewRequest(rawPage, c.PageSize, c.Window)
}

func (c Config) apiRequest(rawPage string) pagination.Request {
	return pagination.NewRequest(rawPage, c.APIPageSize, c.Window)
}
