package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/diegorighi/yukam-front/internal/client/models"
	"github.com/diegorighi/yukam-front/internal/client/router"
	"github.com/diegorighi/yukam-front/internal/client/services"
	"github.com/diegorighi/yukam-front/internal/common"
)

// Customers runs a "pf ..." or "pj ..." command. Reads go through the
// customers destination; block/unblock and delete/restore through their
// admin-only destinations.
func (a *App) Customers(ctx context.Context, kind models.Kind, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: usage: %s list|show|find|block|unblock|delete|restore", common.ErrInvalidInput, kind)
	}
	sub, rest := args[0], args[1:]

	if sub == "list" {
		page := 0
		if len(rest) > 0 {
			p, err := services.ParsePage(rest[0])
			if err != nil {
				return err
			}
			page = p
		}
		dest := router.To(router.CustomersPath).
			With("tipo", string(kind)).
			With("page", strconv.Itoa(page+1))
		return a.guarded(ctx, dest, func(ctx context.Context) error {
			return a.listCustomers(ctx, kind, page)
		})
	}

	if len(rest) != 1 {
		return fmt.Errorf("%w: usage: %s %s <id>", common.ErrInvalidInput, kind, sub)
	}
	id := rest[0]

	switch sub {
	case "show":
		return a.guarded(ctx, router.To(router.CustomersPath), func(ctx context.Context) error {
			c, err := a.customers.Get(ctx, kind, id)
			if err != nil {
				return err
			}
			printCustomer(c)
			return nil
		})

	case "find":
		return a.guarded(ctx, router.To(router.CustomersPath), func(ctx context.Context) error {
			c, err := a.customers.FindByDocument(ctx, kind, id)
			if err != nil {
				return err
			}
			printCustomer(c)
			return nil
		})

	case "block":
		return a.guarded(ctx, router.To(router.BlockCustomerPath), func(ctx context.Context) error {
			reason, err := getSimpleText(a.reader, "Reason for blocking", os.Stdout)
			if err != nil {
				return err
			}
			if err := a.customers.Block(ctx, kind, id, reason); err != nil {
				return err
			}
			printlnFn("Blocked", id)
			return nil
		})

	case "unblock":
		return a.guarded(ctx, router.To(router.BlockCustomerPath), func(ctx context.Context) error {
			if err := a.customers.Unblock(ctx, kind, id); err != nil {
				return err
			}
			printlnFn("Unblocked", id)
			return nil
		})

	case "delete":
		return a.guarded(ctx, router.To(router.DeleteCustomerPath), func(ctx context.Context) error {
			reason, err := getSimpleText(a.reader, "Reason for deletion", os.Stdout)
			if err != nil {
				return err
			}
			if err := a.customers.Delete(ctx, kind, id, reason); err != nil {
				return err
			}
			printlnFn("Deleted", id)
			return nil
		})

	case "restore":
		return a.guarded(ctx, router.To(router.DeleteCustomerPath), func(ctx context.Context) error {
			if err := a.customers.Restore(ctx, kind, id); err != nil {
				return err
			}
			printlnFn("Restored", id)
			return nil
		})
	}

	return fmt.Errorf("%w: unknown %s command %q", common.ErrInvalidInput, kind, sub)
}

func (a *App) listCustomers(ctx context.Context, kind models.Kind, page int) error {
	l, err := a.customers.List(ctx, kind, page, models.DefaultPageSize)
	if err != nil {
		return err
	}

	if len(l.Items) == 0 {
		printlnFn("No active customers on this page.")
	}
	for _, c := range l.Items {
		printlnFn(customerLine(c))
	}
	printlnFn(fmt.Sprintf("%d active | page %s", l.TotalActive, services.FormatPageWindow(l.Page, l.TotalPages)))
	return nil
}

func customerLine(c models.Customer) string {
	status := ""
	if c.Blocked() {
		status = " [blocked]"
	}
	return fmt.Sprintf("%s  %-40s %s%s", c.ID(), c.DisplayName(), c.Document(), status)
}

func printCustomer(c models.Customer) {
	printlnFn(customerLine(c))
	if origin := c.LeadOrigin(); origin != "" {
		printlnFn("Lead origin:", services.LeadLabel(origin))
	}
	printlnFn("Active:", c.Active())
}
