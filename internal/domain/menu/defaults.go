package menu

import "github.com/bnema/selsearch/internal/domain/entity"

type defaultSearch struct {
	name string
	url  string
}

var (
	defaultDatabases = []defaultSearch{
		{"Simkl", "https://simkl.com/search?q=%s"},
		{"IMDB", "https://www.imdb.com/find?q=%s&s=all"},
		{"TVDB", "https://www.thetvdb.com/search?query=%s"},
		{"TMDB", "https://www.themoviedb.org/search?query=%s"},
		{"MAL", "https://myanimelist.net/search/all?q=%s"},
		{"AniList", "https://anilist.co/search/anime?search=%s"},
		{"Kitsu", "https://kitsu.app/anime?text=%s"},
		{"Rotten Tomatoes", "https://www.rottentomatoes.com/search?search=%s"},
		{"Letterboxd", "https://letterboxd.com/search/%s/"},
		{"AnimePlanet", "https://www.anime-planet.com/search.php?search=%s"},
		{"FilmAffinity", "https://www.filmaffinity.com/en/search.php?stext=%s"},
		{"Trakt", "https://trakt.tv/search?query=%s"},
		{"TVMaze", "https://www.tvmaze.com/search?q=%s"},
		{"Douban", "https://www.douban.com/search?q=%s"},
		{"Criticker", "https://www.criticker.com/?search=%s"},
		{"Cineuropa", "https://cineuropa.org/en/searchpage/?search=%s"},
		{"JustWatch", "https://www.justwatch.com/us/search?q=%s"},
	}

	defaultChatGPT = []defaultSearch{
		{"Summarize", "https://chatgpt.com/?q=Summarize:%20%s"},
		{"Translate to English", "https://chatgpt.com/?q=Translate%20to%20English:%20%s"},
		{"Paraphrase", "https://chatgpt.com/?q=Paraphrase:%20%s"},
		{"Explain", "https://chatgpt.com/?q=Explain:%20%s"},
		{"Define", "https://chatgpt.com/?q=Define:%20%s"},
		{"Grammar Check", "https://chatgpt.com/?q=Check%20grammar%20for:%20%s"},
		{"Expand", "https://chatgpt.com/?q=Expand%20on:%20%s"},
		{"Condense", "https://chatgpt.com/?q=Condense:%20%s"},
		{"Bullet Points", "https://chatgpt.com/?q=Convert%20to%20bullet%20points:%20%s"},
	}

	defaultSocial = []defaultSearch{
		{"Reddit", "https://www.reddit.com/search/?q=%s"},
		{"X (Twitter)", "https://x.com/search?q=%s"},
		{"Quora", "https://www.quora.com/search?q=%s"},
		{"Medium", "https://medium.com/search?q=%s"},
		{"Wikipedia", "https://en.wikipedia.org/w/index.php?title=Special:Search&search=%s"},
	}
)

// DefaultTree returns the stock menu with fresh ids from newID.
func DefaultTree(newID IDGenerator) entity.Tree {
	if newID == nil {
		newID = NewID
	}
	search := func(d defaultSearch) *entity.Search {
		return entity.NewSearch(newID(), d.name, d.url)
	}

	tree := entity.Tree{
		search(defaultSearch{"Simkl in TV Shows", "https://simkl.com/search?q=%s&type=tv"}),
		search(defaultSearch{"Simkl in Anime", "https://simkl.com/search?q=%s&type=anime"}),
		search(defaultSearch{"Simkl in Movies", "https://simkl.com/search?q=%s&type=movies"}),
		entity.NewSeparator(newID()),
		search(defaultSearch{"YouTube", "https://www.youtube.com/results?search_query=%s"}),
		search(defaultSearch{"Google Search", "https://www.google.com/search?q=%s"}),
		search(defaultSearch{"Google for \"watch online\"", "https://www.google.com/search?q=%s+watch+online"}),
		entity.NewSeparator(newID()),
	}

	databases := entity.NewGroup(newID(), "Databases")
	for _, d := range defaultDatabases {
		databases.Items = append(databases.Items, search(d))
	}
	databases.Items = append(databases.Items,
		entity.NewSeparator(newID()),
		entity.NewSearch(newID(), entity.SearchEverywhereName, ""),
	)
	tree = append(tree, databases)

	chatGPT := entity.NewGroup(newID(), "ChatGPT")
	for _, d := range defaultChatGPT {
		chatGPT.Items = append(chatGPT.Items, search(d))
	}
	tree = append(tree, chatGPT)

	for _, d := range defaultSocial {
		tree = append(tree, search(d))
	}
	return tree
}
