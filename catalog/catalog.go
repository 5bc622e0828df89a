// Package catalog holds the curated content behind the Pick Up page:
// trending videos, featured creators, and community story highlights.
// Pure data; the page renders it without any network round-trip.
package catalog

// Video is a curated video recommendation.
type Video struct {
	ID      int64
	Title   string
	Channel string
	Views   string
	URL     string
}

// Creator is a featured community creator.
type Creator struct {
	ID          int64
	Name        string
	Bio         string
	Subscribers string
}

// TrendingStory is a community story highlight with engagement counts.
type TrendingStory struct {
	ID       int64
	User     string
	Excerpt  string
	Likes    int
	Comments int
}

// Videos returns the curated video list.
func Videos() []Video {
	return []Video{
		{ID: 1, Title: "The Future of AI Art Generation", Channel: "Tech Visionary", Views: "1.2M", URL: "https://www.youtube.com/watch?v=okPLlbtL8oQ"},
		{ID: 2, Title: "Synthetica Review: Game Changer?", Channel: "CodeLife", Views: "850K", URL: "https://www.youtube.com/watch?v=okPLlbtL8oQ"},
		{ID: 3, Title: "Neural Networks Explained", Channel: "DeepDive", Views: "2.1M", URL: "https://www.youtube.com/watch?v=okPLlbtL8oQ"},
		{ID: 4, Title: "10 Tips for Better Prompts", Channel: "PromptMaster", Views: "500K", URL: "https://www.youtube.com/watch?v=okPLlbtL8oQ"},
	}
}

// Creators returns the featured creator list.
func Creators() []Creator {
	return []Creator{
		{ID: 1, Name: "Sarah Jenkins", Bio: "AI Researcher & Tech Reviewer. Exploring the boundaries of synthetic media.", Subscribers: "2.5M"},
		{ID: 2, Name: "David Chen", Bio: "Full Stack Dev building the future. Tutorials on web, Go, and AI integration.", Subscribers: "1.8M"},
		{ID: 3, Name: "Creative Minds", Bio: "A collective of digital artists using generative tools to tell stories.", Subscribers: "900K"},
	}
}

// TrendingStories returns the community story highlights.
func TrendingStories() []TrendingStory {
	return []TrendingStory{
		{ID: 1, User: "Alex Rivera", Excerpt: "I never thought I could create music, but Synthetica's audio engine helped me compose my first symphony.", Likes: 1240, Comments: 342},
		{ID: 2, User: "Maria Gonzalez", Excerpt: "Using the new visualizer for my classroom changed how students understand complex data. Pure magic.", Likes: 890, Comments: 156},
		{ID: 3, User: "Jordan Lee", Excerpt: "The collab feature is insane. Connecting with other creators instantly has boosted my workflow 10x.", Likes: 2100, Comments: 560},
		{ID: 4, User: "TechDaily", Excerpt: "Reviewing the API documentation... incredibly robust. Kudos to the team.", Likes: 450, Comments: 89},
	}
}
