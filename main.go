package main

import (
	"net/http"

	"github.com/mager/moodring/classifier"
	"github.com/mager/moodring/config"
	"github.com/mager/moodring/database"
	"github.com/mager/moodring/dataset"
	"github.com/mager/moodring/handler/docs"
	"github.com/mager/moodring/handler/health"
	"github.com/mager/moodring/handler/home"
	"github.com/mager/moodring/handler/moods"
	recHandler "github.com/mager/moodring/handler/recommend"
	"github.com/mager/moodring/logger"
	"github.com/mager/moodring/metrics"
	"github.com/mager/moodring/recommend"
	"github.com/mager/moodring/server"
	"go.uber.org/fx"
)

//	@title			Moodring
//	@version		1.0
//	@description	Mood based song recommendation API

//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html

// @host		localhost:8080
// @BasePath	/
func main() {
	fx.New(
		fx.WithLogger(logger.FxLogger),
		fx.Provide(
			config.Options,
			logger.Options,
			logger.ProvideSugaredLogger,
			database.Options,
			dataset.Options,
			classifier.Options,
			metrics.Options,
			NewPredictor,
			recommend.Options,

			fx.Annotate(
				server.NewRouter,
				fx.ParamTags(``, ``, ``, `group:"routes"`),
			),
			server.NewHTTPServer,

			AsRoute(home.NewHomeHandler),
			AsRoute(moods.NewMoodsHandler),
			AsRoute(recHandler.NewMoodHandler),
			AsRoute(recHandler.NewSongHandler),
			AsRoute(health.NewHealthHandler),
			AsRoute(docs.NewDocsHandler),
		),
		fx.Invoke(func(*http.Server) {}),
	).Run()
}

// NewPredictor exposes the loaded classifier to the engine with prediction
// metrics attached.
func NewPredictor(c *classifier.Classifier, m *metrics.Metrics) recommend.MoodPredictor {
	return m.InstrumentPredictor(c)
}

// AsRoute annotates the given constructor to state that
// it provides a route to the "routes" group.
func AsRoute(f any) any {
	return fx.Annotate(
		f,
		fx.As(new(server.Route)),
		fx.ResultTags(`group:"routes"`),
	)
}
