package eventbus_test

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/receitaslab/receitario/internal/recipes/domain/recipe"
	"github.com/receitaslab/receitario/internal/shared/domain"
	"github.com/receitaslab/receitario/internal/shared/infrastructure/eventbus"
)

type mockConsumer struct {
	eventTypes []string
	events     []*eventbus.ConsumedEvent
	err        error
}

func (m *mockConsumer) EventTypes() []string {
	return m.eventTypes
}

func (m *mockConsumer) Handle(ctx context.Context, event *eventbus.ConsumedEvent) error {
	m.events = append(m.events, event)
	return m.err
}

func newTestBus() *eventbus.InProcessEventBus {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	return eventbus.NewInProcessEventBus(logger)
}

func TestInProcessEventBus_Publish(t *testing.T) {
	bus := newTestBus()

	consumer := &mockConsumer{
		eventTypes: []string{"recipes.recipe.created"},
	}
	bus.RegisterConsumer(consumer)

	event := &eventbus.ConsumedEvent{
		EventID:       uuid.New(),
		AggregateID:   "10",
		AggregateType: "Recipe",
		RoutingKey:    "recipes.recipe.created",
		OccurredAt:    time.Now(),
	}

	payload, err := json.Marshal(event)
	require.NoError(t, err)

	err = bus.Publish(context.Background(), "recipes.recipe.created", payload)
	require.NoError(t, err)

	require.Len(t, consumer.events, 1)
	assert.Equal(t, event.EventID, consumer.events[0].EventID)
	assert.Equal(t, "10", consumer.events[0].AggregateID)
}

func TestInProcessEventBus_PublishDomainEvent(t *testing.T) {
	bus := newTestBus()

	consumer := &mockConsumer{
		eventTypes: []string{recipe.RoutingKeyCreated},
	}
	bus.RegisterConsumer(consumer)

	r, err := recipe.NewRecipe("10", "Oregano Marinated Chicken",
		[]string{"main", "chicken"},
		[]string{"4 (6 to 7-ounce) boneless skinless chicken breasts"},
		[]string{"To marinate the chicken: combine lemon juice, olive oil and oregano"},
		nil,
	)
	require.NoError(t, err)

	err = bus.PublishDomainEvent(context.Background(), recipe.NewRecipeCreated(r))
	require.NoError(t, err)

	require.Len(t, consumer.events, 1)
	received := consumer.events[0]
	assert.Equal(t, "10", received.AggregateID)
	assert.Equal(t, recipe.AggregateType, received.AggregateType)
	assert.Equal(t, recipe.RoutingKeyCreated, received.RoutingKey)

	var payload struct {
		Name string `json:"name"`
	}
	require.NoError(t, json.Unmarshal(received.Payload, &payload))
	assert.Equal(t, "Oregano Marinated Chicken", payload.Name)
}

func TestInProcessEventBus_MultipleConsumers(t *testing.T) {
	bus := newTestBus()

	first := &mockConsumer{
		eventTypes: []string{"recipes.recipe.created"},
	}
	second := &mockConsumer{
		eventTypes: []string{"recipes.recipe.created", "recipes.recipe.imported"},
	}
	bus.RegisterConsumer(first)
	bus.RegisterConsumer(second)

	event := &eventbus.ConsumedEvent{
		EventID:    uuid.New(),
		RoutingKey: "recipes.recipe.created",
	}
	payload, err := json.Marshal(event)
	require.NoError(t, err)

	err = bus.Publish(context.Background(), "recipes.recipe.created", payload)
	require.NoError(t, err)

	assert.Len(t, first.events, 1)
	assert.Len(t, second.events, 1)
}

func TestInProcessEventBus_NoConsumers(t *testing.T) {
	bus := newTestBus()

	event := &eventbus.ConsumedEvent{
		EventID:    uuid.New(),
		RoutingKey: "recipes.recipe.created",
	}
	payload, err := json.Marshal(event)
	require.NoError(t, err)

	err = bus.Publish(context.Background(), "recipes.recipe.created", payload)
	assert.NoError(t, err)
}

func TestInProcessEventBus_ContinuesPastFailingConsumer(t *testing.T) {
	bus := newTestBus()

	failing := &mockConsumer{
		eventTypes: []string{"recipes.recipe.created"},
		err:        errors.New("handler failed"),
	}
	healthy := &mockConsumer{
		eventTypes: []string{"recipes.recipe.created"},
	}
	bus.RegisterConsumer(failing)
	bus.RegisterConsumer(healthy)

	event := &eventbus.ConsumedEvent{
		EventID:    uuid.New(),
		RoutingKey: "recipes.recipe.created",
	}
	payload, err := json.Marshal(event)
	require.NoError(t, err)

	// A failing consumer is logged; the publish itself never fails and the
	// remaining consumers still receive the event.
	err = bus.Publish(context.Background(), "recipes.recipe.created", payload)
	assert.NoError(t, err)
	assert.Len(t, failing.events, 1)
	assert.Len(t, healthy.events, 1)
}

func TestInProcessEventBus_MalformedPayload(t *testing.T) {
	bus := newTestBus()

	consumer := &mockConsumer{
		eventTypes: []string{"recipes.recipe.created"},
	}
	bus.RegisterConsumer(consumer)

	// A malformed payload is logged and dropped, not surfaced
	err := bus.Publish(context.Background(), "recipes.recipe.created", []byte("not json"))
	assert.NoError(t, err)
	assert.Empty(t, consumer.events)
}

func TestEnvelope(t *testing.T) {
	instant := time.Date(2024, 7, 14, 12, 30, 0, 0, time.UTC)
	r, err := recipe.NewRecipe("10", "Oregano Marinated Chicken",
		[]string{"main", "chicken"},
		[]string{"4 (6 to 7-ounce) boneless skinless chicken breasts"},
		[]string{"To marinate the chicken: combine lemon juice, olive oil and oregano"},
		domain.FixedClock(instant),
	)
	require.NoError(t, err)

	event := recipe.NewRecipeCreated(r)
	env, err := eventbus.Envelope(event)
	require.NoError(t, err)

	assert.Equal(t, event.EventID(), env.EventID)
	assert.Equal(t, "10", env.AggregateID)
	assert.Equal(t, recipe.AggregateType, env.AggregateType)
	assert.Equal(t, recipe.RoutingKeyCreated, env.RoutingKey)
	assert.Equal(t, instant, env.OccurredAt)

	var payload struct {
		Name             string `json:"name"`
		TagCount         int    `json:"tag_count"`
		IngredientCount  int    `json:"ingredient_count"`
		InstructionCount int    `json:"instruction_count"`
	}
	require.NoError(t, json.Unmarshal(env.Payload, &payload))
	assert.Equal(t, "Oregano Marinated Chicken", payload.Name)
	assert.Equal(t, 2, payload.TagCount)
	assert.Equal(t, 1, payload.IngredientCount)
	assert.Equal(t, 1, payload.InstructionCount)
}
