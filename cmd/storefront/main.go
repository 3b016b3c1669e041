// Command storefront runs the browse-to-order flow against a backend from
// the terminal: it loads the catalog, fills a basket, completes the delivery
// and contact forms, and submits the order. Views are small renderers
// subscribed to the event bus, so everything printed reflects store events,
// not direct call results.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"weblarek/internal/checkout"
	"weblarek/internal/config"
	"weblarek/internal/domain"
	"weblarek/internal/events"
	"weblarek/internal/gateway"
	"weblarek/internal/store"
)

type galleryRenderer struct{ out io.Writer }

func (r *galleryRenderer) Render(products []domain.Product) {
	fmt.Fprintf(r.out, "--- catalog (%d items) ---\n", len(products))
	for _, p := range products {
		fmt.Fprintf(r.out, "  [%s] %s (%s) — %s\n", p.ID, p.Title, p.Category, p.DisplayPrice())
	}
}

type basketRenderer struct{ out io.Writer }

func (r *basketRenderer) Render(items []domain.BasketLine, total string) {
	fmt.Fprintf(r.out, "--- basket (%d lines, total %s) ---\n", len(items), total)
	for _, l := range items {
		fmt.Fprintf(r.out, "  %s\n", l)
	}
}

type formErrorsRenderer struct{ out io.Writer }

func (r *formErrorsRenderer) Render(errs []string) {
	if len(errs) == 0 {
		return
	}
	fmt.Fprintf(r.out, "form errors: %s\n", strings.Join(errs, "; "))
}

type successRenderer struct{ out io.Writer }

func (r *successRenderer) Render(conf domain.OrderConfirmation) {
	fmt.Fprintf(r.out, "order %s placed, status %s, charged %s\n",
		conf.ID, conf.Status, domain.FormatTotal(conf.Total))
}

func main() {
	var (
		add     = flag.String("add", "", "comma-separated product ids to add (repeat an id to bump quantity)")
		email   = flag.String("email", "", "contact email")
		phone   = flag.String("phone", "", "contact phone")
		address = flag.String("address", "", "delivery address")
		payment = flag.String("payment", "card", "payment method")
	)
	flag.Parse()

	cfg := config.Load()

	bus := events.NewBus()
	catalog := store.NewCatalog(bus)
	basket := store.NewBasket(bus)
	order := store.NewOrder(bus)
	backend := gateway.NewClient(cfg.APIBaseURL, cfg.CDNBaseURL)
	flow := checkout.New(bus, catalog, basket, order, backend)

	gallery := &galleryRenderer{out: os.Stdout}
	basketView := &basketRenderer{out: os.Stdout}
	formView := &formErrorsRenderer{out: os.Stdout}
	successView := &successRenderer{out: os.Stdout}

	bus.Subscribe(events.KindProductsUpdated, func(e events.Event) {
		gallery.Render(e.(events.ProductsUpdated).Products)
	})
	bus.Subscribe(events.KindBasketUpdated, func(e events.Event) {
		u := e.(events.BasketUpdated)
		basketView.Render(u.Items, u.Total)
	})
	bus.Subscribe(events.KindFormErrors, func(e events.Event) {
		formView.Render(e.(events.FormErrorsChanged).Errors)
	})
	bus.Subscribe(events.KindOrderSuccess, func(e events.Event) {
		successView.Render(e.(events.OrderSuccess).Confirmation)
	})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := flow.LoadCatalog(ctx); err != nil {
		log.Fatal(err)
	}

	ids := strings.Split(*add, ",")
	if *add == "" {
		// No explicit picks: take the first purchasable product.
		for _, p := range catalog.Products() {
			if p.Price != nil {
				ids = []string{p.ID}
				break
			}
		}
	}
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if err := flow.AddToBasket(id); err != nil {
			log.Printf("skip %s: %v", id, err)
		}
	}

	if err := flow.OpenCheckout(); err != nil {
		log.Fatal(err)
	}
	flow.SetPayment(*payment)
	flow.SetAddress(*address)
	flow.SetContact(*email, *phone)

	if _, err := flow.Submit(ctx); err != nil {
		log.Fatal(err)
	}
}
