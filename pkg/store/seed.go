package store

import (
	"fmt"
	"strconv"

	"github.com/jaswdr/faker/v2"
)

// Seed holds the initial contents of the store. Each entry is a field map
// in the same shape the HTTP API accepts; ids are taken from the maps and
// the store's counters continue past the highest seeded id.
type Seed struct {
	Users []map[string]any
	Posts []map[string]any
}

// DefaultSeed returns the two canonical users and three posts the server
// ships with.
func DefaultSeed() Seed {
	return Seed{
		Users: []map[string]any{
			{
				"id":       1,
				"name":     "Leanne Graham",
				"username": "Bret",
				"email":    "Sincere@april.biz",
				"address": map[string]any{
					"street":  "Kulas Light",
					"suite":   "Apt. 556",
					"city":    "Gwenborough",
					"zipcode": "92998-3874",
					"geo":     map[string]any{"lat": "-37.3159", "lng": "81.1496"},
				},
				"phone":   "1-770-736-8031 x56442",
				"website": "hildegard.org",
				"company": map[string]any{
					"name":        "Romaguera-Crona",
					"catchPhrase": "Multi-layered client-server neural-net",
					"bs":          "harness real-time e-markets",
				},
			},
			{
				"id":       2,
				"name":     "Ervin Howell",
				"username": "Antonette",
				"email":    "Shanna@melissa.tv",
				"address": map[string]any{
					"street":  "Victor Plains",
					"suite":   "Suite 879",
					"city":    "Wisokyburgh",
					"zipcode": "90566-7771",
					"geo":     map[string]any{"lat": "-43.9509", "lng": "-34.4618"},
				},
				"phone":   "010-692-6593 x09125",
				"website": "anastasia.net",
				"company": map[string]any{
					"name":        "Deckow-Crist",
					"catchPhrase": "Proactive didactic contingency",
					"bs":          "synergize scalable supply-chains",
				},
			},
		},
		Posts: []map[string]any{
			{
				"id":     1,
				"userId": 1,
				"title":  "sunt aut facere repellat provident occaecati excepturi optio reprehenderit",
				"body":   "quia et suscipit\nsuscipit recusandae consequuntur expedita et cum\nreprehenderit molestiae ut ut quas totam\nnostrum rerum est autem sunt rem eveniet architecto",
			},
			{
				"id":     2,
				"userId": 1,
				"title":  "qui est esse",
				"body":   "est rerum tempore vitae\nsequi sint nihil reprehenderit dolor beatae ea dolores neque\nfugiat blanditiis voluptate porro vel nihil molestiae ut reiciendis\nqui aperiam non debitis possimus qui neque nisi nulla",
			},
			{
				"id":     3,
				"userId": 2,
				"title":  "ea molestias quasi exercitationem repellat qui ipsa sit aut",
				"body":   "et iusto sed quo iure\nvoluptatem occaecati omnis eligendi aut ad\nvoluptatem doloribus vel accusantium quis pariatur\nmolestiae porro eius odio et labore et velit aut",
			},
		},
	}
}

// postsPerGeneratedUser is how many posts each faker-generated user gets.
const postsPerGeneratedUser = 2

// WithGenerated appends n fake users, each with a couple of posts, to the
// seed. Ids continue past the highest existing id and generated emails are
// made unique by embedding the user id.
func WithGenerated(seed Seed, n int) Seed {
	if n <= 0 {
		return seed
	}

	f := faker.New()
	nextUserID := maxID(seed.Users, "id") + 1
	nextPostID := maxID(seed.Posts, "id") + 1

	for i := 0; i < n; i++ {
		userID := nextUserID
		nextUserID++

		username := f.Internet().User()
		seed.Users = append(seed.Users, map[string]any{
			"id":       userID,
			"name":     f.Person().Name(),
			"username": username,
			"email":    fmt.Sprintf("%s.%d@%s", username, userID, f.Internet().Domain()),
			"address": map[string]any{
				"street":  f.Address().StreetName(),
				"suite":   f.Address().SecondaryAddress(),
				"city":    f.Address().City(),
				"zipcode": f.Address().PostCode(),
				"geo": map[string]any{
					"lat": strconv.FormatFloat(f.Address().Latitude(), 'f', 4, 64),
					"lng": strconv.FormatFloat(f.Address().Longitude(), 'f', 4, 64),
				},
			},
			"phone":   f.Phone().Number(),
			"website": f.Internet().Domain(),
			"company": map[string]any{
				"name":        f.Company().Name(),
				"catchPhrase": f.Company().CatchPhrase(),
				"bs":          f.Company().BS(),
			},
		})

		for j := 0; j < postsPerGeneratedUser; j++ {
			seed.Posts = append(seed.Posts, map[string]any{
				"id":     nextPostID,
				"userId": userID,
				"title":  f.Lorem().Sentence(6),
				"body":   f.Lorem().Paragraph(2),
			})
			nextPostID++
		}
	}

	return seed
}

// maxID returns the highest integer value of the given key across maps.
func maxID(items []map[string]any, key string) int {
	max := 0
	for _, m := range items {
		if v, ok := intField(m, key); ok && v > max {
			max = v
		}
	}
	return max
}
