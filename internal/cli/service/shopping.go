package service

import (
	"context"
	"strconv"
	"strings"

	"Cepte/internal/cli/model"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ShoppingList — список покупок поверх общего синхронизатора.
// Новые позиции добавляются в конец, порядок вставки сохраняется.
type ShoppingList struct {
	*Synchronizer[model.ShoppingItem]
}

var shoppingKind = Kind[model.ShoppingItem]{
	Collection: "alisverisListesi",
	Key:        func(it model.ShoppingItem) string { return it.ID },
	WithOwner: func(it model.ShoppingItem, owner string) model.ShoppingItem {
		it.UserID = owner
		return it
	},
}

func NewShoppingList(store Store, owner OwnerSource, log *zap.SugaredLogger) *ShoppingList {
	return &ShoppingList{NewSynchronizer(store, owner, log, shoppingKind)}
}

// Add валидирует черновик и добавляет позицию. Название не может быть
// пустым, цена — неотрицательное число. Недопустимый черновик не
// трогает ни список, ни хранилище.
func (l *ShoppingList) Add(ctx context.Context, name, price string) Result {
	name = strings.TrimSpace(name)
	if name == "" {
		return resultInvalid()
	}
	p, err := strconv.ParseFloat(strings.TrimSpace(price), 64)
	if err != nil || p < 0 {
		return resultInvalid()
	}
	return l.Insert(ctx, model.ShoppingItem{
		ID:    uuid.NewString(),
		Name:  name,
		Price: p,
	})
}

// ToggleChecked переключает отметку позиции. Двойное применение
// возвращает исходное состояние.
func (l *ShoppingList) ToggleChecked(ctx context.Context, id string) Result {
	return l.Update(ctx, id, func(it model.ShoppingItem) model.ShoppingItem {
		it.Checked = !it.Checked
		return it
	})
}

// Edit заменяет название и цену позиции. Правила валидации те же, что
// у Add.
func (l *ShoppingList) Edit(ctx context.Context, id, name, price string) Result {
	name = strings.TrimSpace(name)
	if name == "" {
		return resultInvalid()
	}
	p, err := strconv.ParseFloat(strings.TrimSpace(price), 64)
	if err != nil || p < 0 {
		return resultInvalid()
	}
	return l.Update(ctx, id, func(it model.ShoppingItem) model.ShoppingItem {
		it.Name = name
		it.Price = p
		return it
	})
}

// Total — сумма цен всех позиций, включая отмеченные.
func (l *ShoppingList) Total() float64 {
	var sum float64
	for _, it := range l.Items() {
		sum += it.Price
	}
	return sum
}
