package entity

import "time"

// Supplier proveedor, identificado por nombre único. Se resuelve o crea en la
// primera compra que lo referencia; el núcleo nunca lo borra.
type Supplier struct {
	ID        string
	Name      string
	Contact   string
	CreatedAt time.Time
}
