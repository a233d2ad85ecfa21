package hero

// Seed returns the built-in roster used when no hero database is configured.
func Seed() []Hero {
	return []Hero{
		{
			ID:              "dc-batman",
			Superhero:       "Batman",
			Publisher:       PublisherDC,
			AlterEgo:        "Bruce Wayne",
			FirstAppearance: "Detective Comics #27",
			Characters:      "Bruce Wayne",
		},
		{
			ID:              "dc-superman",
			Superhero:       "Superman",
			Publisher:       PublisherDC,
			AlterEgo:        "Kal-El",
			FirstAppearance: "Action Comics #1",
			Characters:      "Kal-El",
		},
		{
			ID:              "dc-flash",
			Superhero:       "Flash",
			Publisher:       PublisherDC,
			AlterEgo:        "Jay Garrick",
			FirstAppearance: "Flash Comics #1",
			Characters:      "Jay Garrick, Barry Allen, Wally West, Bart Allen",
		},
		{
			ID:              "marvel-spider",
			Superhero:       "Spider Man",
			Publisher:       PublisherMarvel,
			AlterEgo:        "Peter Parker",
			FirstAppearance: "Amazing Fantasy #15",
			Characters:      "Peter Parker",
		},
		{
			ID:              "marvel-iron",
			Superhero:       "Iron Man",
			Publisher:       PublisherMarvel,
			AlterEgo:        "Tony Stark",
			FirstAppearance: "Tales of Suspense #39",
			Characters:      "Tony Stark",
		},
		{
			ID:              "marvel-wolverine",
			Superhero:       "Wolverine",
			Publisher:       PublisherMarvel,
			AlterEgo:        "James Howlett",
			FirstAppearance: "The Incredible Hulk #180",
			Characters:      "James Howlett",
		},
	}
}
