package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"drinkpos/config"
	"drinkpos/internal/domain/entity"
	"drinkpos/internal/domain/report"
	logs "drinkpos/internal/infra/log"
	"drinkpos/internal/infra/persistence"
	"drinkpos/internal/usecase"
	"drinkpos/internal/usecase/impl"
	"drinkpos/internal/util"

	"github.com/google/uuid"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

func main() {
	var (
		from       = flag.String("from", "", "Inclusive start date (YYYY-MM-DD)")
		to         = flag.String("to", "", "Inclusive end date (YYYY-MM-DD)")
		method     = flag.String("method", "", "Payment method: cash, transfer or postpaid")
		staff      = flag.String("staff", "", "Staff user id")
		item       = flag.String("item", "", "Menu item id (matches variants of a parent)")
		minTotal   = flag.String("min", "", "Minimum order total")
		maxTotal   = flag.String("max", "", "Maximum order total")
		search     = flag.String("q", "", "Search order id, customer name or phone")
		sortOrder  = flag.String("sort", string(report.SortTimeDesc), "time-desc, time-asc, price-desc or price-asc")
		showOrders = flag.Bool("orders", false, "Also list the matching orders")
		timeout    = flag.Duration("timeout", 30*time.Second, "Overall timeout")
	)
	flag.Parse()

	filter, err := buildFilter(*from, *to, *method, *staff, *item, *minTotal, *maxTotal, *search)
	if err != nil {
		log.Fatalf("Invalid filter: %v", err)
	}

	sort := report.SortOrder(*sortOrder)
	if !sort.IsValid() {
		log.Fatalf("Invalid sort order: %s", *sortOrder)
	}

	var revenueUC usecase.RevenueUsecase
	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			persistence.New,
			impl.NewRevenueService,
		),
		fx.Populate(&revenueUC),
	)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
	defer func() {
		if err := app.Stop(context.Background()); err != nil {
			log.Printf("Failed to stop: %v", err)
		}
	}()

	result, err := revenueUC.Report(ctx, filter, sort)
	if err != nil {
		log.Printf("Failed to build report: %v", err)

		return
	}

	if err := renderSummary(result); err != nil {
		log.Printf("Failed to render summary: %v", err)

		return
	}

	if *showOrders {
		fmt.Println()
		if err := renderOrders(result.Orders); err != nil {
			log.Printf("Failed to render orders: %v", err)
		}
	}
}

func buildFilter(from, to, method, staff, item, minTotal, maxTotal, search string) (report.Filter, error) {
	filter := report.Filter{
		From:          from,
		To:            to,
		PaymentMethod: entity.PaymentMethod(method),
		Search:        search,
	}

	var err error
	if filter.StaffID, err = optionalUUID(staff); err != nil {
		return filter, errors.Wrap(err, "staff")
	}
	if filter.ItemID, err = optionalUUID(item); err != nil {
		return filter, errors.Wrap(err, "item")
	}
	if filter.MinTotal, err = optionalInt64(minTotal); err != nil {
		return filter, errors.Wrap(err, "min")
	}
	if filter.MaxTotal, err = optionalInt64(maxTotal); err != nil {
		return filter, errors.Wrap(err, "max")
	}

	return filter, nil
}

func optionalUUID(value string) (*uuid.UUID, error) {
	if value == "" {
		return nil, nil
	}

	id, err := uuid.Parse(value)
	if err != nil {
		return nil, err
	}

	return &id, nil
}

func optionalInt64(value string) (*int64, error) {
	if value == "" {
		return nil, nil
	}

	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return nil, err
	}

	return &n, nil
}

func renderSummary(result *report.Result) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Method", "Revenue", "Share %")

	for _, method := range entity.PaymentMethods {
		share := result.MethodShare[method]
		if err := table.Append(string(method), util.FormatVND(result.ByMethod[method]), share.StringFixed(2)); err != nil {
			return err
		}
	}

	table.Footer(
		fmt.Sprintf("%d orders, %d items", result.Count, result.ItemsSold),
		util.FormatVND(result.Total),
		"avg "+result.AverageOrderValue.StringFixed(0),
	)

	return table.Render()
}

func renderOrders(orders []*entity.Order) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Order", "Date", "Method", "Items", "Total", "Customer")

	for _, order := range orders {
		row := []string{
			util.ShortID(order.ID),
			order.EffectiveDate().Format(time.DateTime),
			string(order.PaymentMethod),
			strconv.Itoa(order.ItemCount()),
			util.FormatVND(order.Total),
			order.CustomerName,
		}
		if err := table.Append(row); err != nil {
			return err
		}
	}

	return table.Render()
}
