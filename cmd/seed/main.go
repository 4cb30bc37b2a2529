// Command seed writes a starter catalog file. The service itself never
// creates the catalog: a missing file is a storage error on every request,
// so operators seed once before first start.
package main

import (
	"context"
	"flag"

	"go.uber.org/zap"

	"BookNook/internal/catalog"
	"BookNook/pkg/kit"
)

var seedBooks = []catalog.Book{
	{ISBN: "0001", Title: "Things Fall Apart", Author: "Chinua Achebe", Reviews: []catalog.Review{}},
	{ISBN: "0002", Title: "Fairy tales", Author: "Hans Christian Andersen", Reviews: []catalog.Review{}},
	{ISBN: "0003", Title: "The Divine Comedy", Author: "Dante Alighieri", Reviews: []catalog.Review{}},
	{ISBN: "0004", Title: "The Epic Of Gilgamesh", Author: "Unknown", Reviews: []catalog.Review{}},
	{ISBN: "0005", Title: "The Book Of Job", Author: "Unknown", Reviews: []catalog.Review{}},
	{ISBN: "0006", Title: "One Thousand and One Nights", Author: "Unknown", Reviews: []catalog.Review{}},
	{ISBN: "0007", Title: "Njal's Saga", Author: "Unknown", Reviews: []catalog.Review{}},
	{ISBN: "0008", Title: "Pride and Prejudice", Author: "Jane Austen", Reviews: []catalog.Review{}},
	{ISBN: "0009", Title: "Le Pere Goriot", Author: "Honore de Balzac", Reviews: []catalog.Review{}},
	{ISBN: "0010", Title: "Molloy, Malone Dies, The Unnamable, the trilogy", Author: "Samuel Beckett", Reviews: []catalog.Review{}},
}

func main() {
	log := kit.NewLogger("seed")
	defer func() { _ = log.Sync() }()

	path := flag.String("out", "books.json", "catalog file to write")
	flag.Parse()

	store := catalog.NewFileStore(*path)
	if err := store.SaveAll(context.Background(), seedBooks); err != nil {
		log.Fatal("seed catalog", zap.Error(err))
	}

	log.Info("catalog seeded", zap.String("path", *path), zap.Int("books", len(seedBooks)))
}
