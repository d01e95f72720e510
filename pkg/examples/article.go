package examples

import "github.com/blogpanel/blogpanel/pkg/models"

const sampleArticle = `# Plan for the days ahead

The weather turned before anyone expected it to. By noon the harbor had emptied, the ferries sat tied to their posts, and the small cafe at the end of the pier lit its lamps three hours early.

Nobody in the village treats a storm like this as an emergency. It is a reason to stay in, to finish the book you started in spring, to cook the long recipe that needs the oven on all afternoon.

Old Ilse at the bakery says the wind will blow itself out by Thursday. She has been right about these things for forty years, and the fishermen have learned to plan their week around her forecasts rather than the radio.

So the plan is simple. Read, write letters, mend the net that tore in August, and watch the water from the window until the horizon comes back.`

// Article returns the article shown when no file is given
func Article() *models.Article {
	return models.ParseArticle("", sampleArticle)
}
