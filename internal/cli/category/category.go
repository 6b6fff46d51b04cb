package category

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math"
	"time"

	"pocketledger/internal/cli"
	"pocketledger/internal/config"
	"pocketledger/internal/dashboard"
	"pocketledger/internal/ledger"
	"pocketledger/internal/logger"
	"pocketledger/internal/store"
	"pocketledger/internal/util"
)

type categoryCommand struct {
	add      string
	icon     string
	color    string
	deleteID string
}

func NewCommand() cli.Command {
	return &categoryCommand{}
}

func (c *categoryCommand) Description() string {
	return "Lists, adds, or deletes expense categories"
}

func (c *categoryCommand) SetFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.add, "add", "", "name of a category to add")
	fs.StringVar(&c.icon, "icon", "", "icon for the new category")
	fs.StringVar(&c.color, "color", "", "color for the new category")
	fs.StringVar(&c.deleteID, "delete", "", "id of a category to delete")
}

func (c *categoryCommand) Run(conf *config.Config, s *store.Store, _ *logger.Logger) error {
	ctx := context.Background()

	switch {
	case c.add != "":
		return c.runAdd(ctx, s)
	case c.deleteID != "":
		return c.runDelete(ctx, s)
	default:
		return c.runList(s, conf)
	}
}

func (c *categoryCommand) runAdd(ctx context.Context, s *store.Store) error {
	icon := c.icon
	if icon == "" {
		icon = ledger.Icons[0]
	}
	color := c.color
	if color == "" {
		color = ledger.Colors[0]
	}

	added := s.AddCategory(ctx, ledger.Category{
		Name:  c.add,
		Icon:  icon,
		Color: color,
		Date:  time.Now().Format(ledger.DateLayout),
	})

	fmt.Printf("Created category %s %s (%s)\n", added.Icon, added.Name, added.ID)
	return nil
}

func (c *categoryCommand) runDelete(ctx context.Context, s *store.Store) error {
	err := s.DeleteCategory(ctx, c.deleteID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("no category with id %q", c.deleteID)
		}
		return err
	}

	fmt.Println("Category deleted. Expenses referencing it keep their record and show as uncategorized.")
	return nil
}

func (c *categoryCommand) runList(s *store.Store, conf *config.Config) error {
	snapshot := s.Snapshot()

	if len(snapshot.Categories) == 0 {
		fmt.Println("No categories yet")
		return nil
	}

	for _, category := range snapshot.Categories {
		var total float64
		for _, e := range snapshot.Expenses {
			if e.CategoryID == category.ID && !math.IsNaN(e.Amount) {
				total += e.Amount
			}
		}

		fmt.Printf("%s %s  %s  %s\n",
			category.Icon,
			util.ColorOutput(category.Name, "bold"),
			util.FormatAmount(total, conf.Currency),
			util.ColorOutput(category.ID, "cyan"))
	}

	if top, total, ok := dashboard.TopCategory(snapshot.Expenses, snapshot.Categories); ok {
		fmt.Println()
		fmt.Printf("Top category: %s %s (%s)\n", top.Icon, top.Name, util.FormatAmount(total, conf.Currency))
	}

	return nil
}
