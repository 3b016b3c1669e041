package events_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"weblarek/internal/domain"
	"weblarek/internal/events"
)

func TestBusDispatchesInSubscriptionOrder(t *testing.T) {
	bus := events.NewBus()
	var order []string
	bus.Subscribe(events.KindBasketUpdated, func(events.Event) { order = append(order, "first") })
	bus.Subscribe(events.KindBasketUpdated, func(events.Event) { order = append(order, "second") })
	bus.Subscribe(events.KindProductsUpdated, func(events.Event) { order = append(order, "other-kind") })

	bus.Publish(events.BasketUpdated{Total: "0.00 synapses"})

	require.Equal(t, []string{"first", "second"}, order)
}

func TestBusTypedPayloadRoundTrip(t *testing.T) {
	bus := events.NewBus()
	var got events.FormErrorsChanged
	bus.Subscribe(events.KindFormErrors, func(e events.Event) {
		got = e.(events.FormErrorsChanged)
	})

	bus.Publish(events.FormErrorsChanged{Errors: []string{"a", "b"}})

	require.Equal(t, []string{"a", "b"}, got.Errors)
}

func TestBusSecondaryEmissionCompletesDepthFirst(t *testing.T) {
	bus := events.NewBus()
	var order []string

	bus.Subscribe(events.KindOrderValidate, func(events.Event) {
		order = append(order, "validate")
		bus.Publish(events.FormErrorsChanged{})
	})
	bus.Subscribe(events.KindFormErrors, func(events.Event) {
		order = append(order, "errors")
	})

	bus.Publish(events.OrderValidate{})
	order = append(order, "returned")

	require.Equal(t, []string{"validate", "errors", "returned"}, order)
}

func TestEventKinds(t *testing.T) {
	require.Equal(t, events.KindProductsUpdated, events.ProductsUpdated{}.Kind())
	require.Equal(t, events.KindBasketUpdated, events.BasketUpdated{}.Kind())
	require.Equal(t, events.KindOrderSuccess, events.OrderSuccess{Confirmation: domain.OrderConfirmation{}}.Kind())
}
