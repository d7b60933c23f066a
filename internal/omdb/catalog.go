package omdb

// OMDb has no category endpoints, so browsing categories are seeded from
// curated title lists. These are fixed configuration data, loaded once and
// never mutated.

var popularMovieTitles = []string{
	"The Dark Knight", "Inception", "Pulp Fiction", "The Matrix", "Interstellar",
	"The Godfather", "Fight Club", "Forrest Gump", "The Shawshank Redemption", "Goodfellas",
	"The Lord of the Rings", "Star Wars", "Avatar", "Titanic", "Jurassic Park",
	"The Avengers", "Iron Man", "Spider-Man", "Batman", "Superman",
	"Gladiator", "Braveheart", "Saving Private Ryan", "The Departed", "Django Unchained",
}

var topRatedMovieTitles = []string{
	"The Shawshank Redemption", "The Godfather", "The Dark Knight", "The Godfather Part II",
	"12 Angry Men", "Schindler's List", "The Lord of the Rings: The Return of the King",
	"Pulp Fiction", "The Lord of the Rings: The Fellowship of the Ring", "The Good, the Bad and the Ugly",
	"Forrest Gump", "Fight Club", "Inception", "The Lord of the Rings: The Two Towers",
	"Star Wars: Episode V - The Empire Strikes Back", "The Matrix", "Goodfellas",
	"One Flew Over the Cuckoo's Nest", "Se7en", "Seven Samurai", "City of God",
	"Life Is Beautiful", "The Silence of the Lambs", "It's a Wonderful Life", "Modern Times",
}
