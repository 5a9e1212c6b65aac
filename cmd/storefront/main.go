// Smoke-test CLI for the storefront data layer. Points at a running API
// (real or mock), walks the main store flows, and prints what the UI
// would observe, including rollbacks and bus events.
package main

import (
	"context"
	"encoding/json"
	"log"

	"github.com/fatih/color"

	"github.com/jyush98/jason-co-ecom-sub004/internal/bootstrap"
	"github.com/jyush98/jason-co-ecom-sub004/internal/config"
	"github.com/jyush98/jason-co-ecom-sub004/internal/dto"
	"github.com/jyush98/jason-co-ecom-sub004/internal/store"
)

var (
	heading = color.New(color.FgCyan, color.Bold)
	ok      = color.New(color.FgGreen)
	warn    = color.New(color.FgYellow)
	fail    = color.New(color.FgRed)
)

func main() {
	cfg := config.Load()
	container := bootstrap.NewContainer(cfg)
	defer container.Close()

	ctx := context.Background()

	// Echo bus events as they happen so optimistic flows are visible.
	go tailEvents(ctx, container)

	heading.Println("== Catalog ==")
	page, err := container.Catalog.Products(ctx, dto.ProductFilter{Featured: true})
	if err != nil {
		fail.Printf("products: %v\n", err)
	} else {
		ok.Printf("%d featured products (of %d total)\n", len(page.Products), page.Total)
		for _, p := range page.Products {
			log.Printf("  #%d %s  $%.2f", p.Id, p.Name, p.Price)
		}
	}

	heading.Println("== Wishlist ==")
	if err := container.Wishlist.FetchAll(ctx, dto.WishlistFilter{}); err != nil {
		fail.Printf("fetch wishlist: %v\n", err)
	}
	report(container.Wishlist.Add(ctx, dto.AddToWishlistRequest{ProductId: 1, Priority: 1}))
	ok.Printf("wishlist has %d items, loading=%v\n", container.Wishlist.Len(), container.Wishlist.IsLoading())

	if stats, err := container.Wishlist.Stats(ctx); err == nil {
		ok.Printf("stats: %d items worth $%.2f\n", stats.TotalItems, stats.TotalValue)
	}

	heading.Println("== Cart ==")
	if err := container.Cart.FetchAll(ctx); err != nil {
		fail.Printf("fetch cart: %v\n", err)
	}
	report(container.Cart.Add(ctx, 2, 1))
	report(container.Cart.UpdateQuantity(ctx, 2, 3))
	if count, err := container.Cart.Count(ctx); err == nil {
		ok.Printf("cart count: %d, subtotal: $%.2f\n", count, container.Cart.Subtotal())
	}

	heading.Println("== Orders ==")
	if err := container.Orders.FetchAll(ctx, 10, 0); err != nil {
		fail.Printf("fetch orders: %v\n", err)
	} else {
		ok.Printf("%d orders in history\n", container.Orders.Len())
	}

	heading.Println("== Failure path ==")
	// Product 999999 does not exist; the optimistic insert must roll back.
	before := container.Wishlist.Len()
	report(container.Wishlist.Add(ctx, dto.AddToWishlistRequest{ProductId: 999999}))
	if container.Wishlist.Len() == before {
		ok.Println("rollback verified: item count unchanged")
	} else {
		fail.Println("rollback FAILED: placeholder still present")
	}
	if msg := container.Wishlist.LastError(); msg != "" {
		warn.Printf("surfaced error: %q\n", msg)
		container.Wishlist.ClearError()
	}
}

func report(res store.ActionResult) {
	if res.Success {
		ok.Printf("ok: %s\n", res.Message)
		return
	}
	warn.Printf("rejected: %s\n", res.Err)
}

func tailEvents(ctx context.Context, container *bootstrap.Container) {
	messages, err := container.Bus.Subscribe(ctx)
	if err != nil {
		return
	}
	event := color.New(color.FgMagenta)
	for msg := range messages {
		var pretty map[string]interface{}
		if err := json.Unmarshal(msg.Payload, &pretty); err == nil {
			event.Printf("event: %s %v\n", msg.Metadata.Get("event_type"), pretty["data"])
		}
		msg.Ack()
	}
}
