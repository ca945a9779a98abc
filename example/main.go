package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/theflywheel/probemap"
)

func main() {
	m := probemap.New()

	fmt.Printf("Created map with capacity %d\n", m.Capacity())

	// Insert some data
	for i := 0; i < 10; i++ {
		if err := m.Put(i, i*100); err != nil {
			log.Fatalf("Failed to insert key %d: %v", i, err)
		}
	}

	fmt.Printf("Inserted 10 key-value pairs, capacity is now %d (load %.2f)\n",
		m.Capacity(), m.LoadFactor())

	// Retrieve and display some values
	for i := 0; i < 15; i += 2 {
		value, err := m.Get(i)
		if err != nil {
			fmt.Printf("Key %d not found\n", i)
			continue
		}
		fmt.Printf("Key %d => Value %v\n", i, value)
	}

	// String keys work alongside integer keys
	if err := m.Put("language", "Go"); err != nil {
		log.Fatalf("Failed to insert string key: %v", err)
	}

	// Update a value
	if err := m.Put(2, 999); err != nil {
		log.Fatalf("Failed to update key 2: %v", err)
	}

	value, err := m.Get(2)
	if err != nil {
		log.Fatalf("Failed to read back key 2: %v", err)
	}
	fmt.Printf("Key 2 updated => Value %v\n", value)

	// Delete a key
	if err := m.Delete(4); err != nil {
		log.Fatalf("Failed to delete key 4: %v", err)
	}

	if _, err := m.Get(4); errors.Is(err, probemap.ErrKeyNotFound) {
		fmt.Println("Key 4 deleted")
	}

	// Invalid key kinds are rejected up front
	if err := m.Put(3.14, "x"); errors.Is(err, probemap.ErrInvalidKeyKind) {
		fmt.Println("Float keys are rejected")
	}

	fmt.Printf("Final state: %d live keys, %d deleted, capacity %d\n",
		m.Len(), m.Deleted(), m.Capacity())
}
