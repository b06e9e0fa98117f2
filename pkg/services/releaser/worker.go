package releaser

import (
	"context"
	"errors"
	"sync"

	"github.com/estafette/estafette-release-publisher/pkg/clients/githubapi"
	"github.com/opentracing/opentracing-go"
	"github.com/rs/zerolog/log"
)

// EventDispatcher dispatches release events pushed to the events channel to the workers
type EventDispatcher interface {
	// A pool of worker channels that are registered with the dispatcher
	Run()
}

type eventDispatcherImpl struct {
	waitGroup     *sync.WaitGroup
	stopChannel   <-chan struct{}
	workerPool    chan chan githubapi.ReleaseEvent
	maxWorkers    int
	eventsChannel chan githubapi.ReleaseEvent
	service       Service
}

// NewEventDispatcher returns a releaser.EventDispatcher fanning out events to maxWorkers workers
func NewEventDispatcher(stopChannel <-chan struct{}, waitGroup *sync.WaitGroup, maxWorkers int, service Service, eventsChannel chan githubapi.ReleaseEvent) EventDispatcher {
	return &eventDispatcherImpl{
		waitGroup:     waitGroup,
		stopChannel:   stopChannel,
		workerPool:    make(chan chan githubapi.ReleaseEvent, maxWorkers),
		maxWorkers:    maxWorkers,
		eventsChannel: eventsChannel,
		service:       service,
	}
}

// Run starts the dispatcher
func (d *eventDispatcherImpl) Run() {
	// starting n number of workers
	for i := 0; i < d.maxWorkers; i++ {
		worker := NewEventWorker(d.stopChannel, d.waitGroup, d.workerPool, d.service)
		worker.ListenToEventChannels()
	}

	go d.dispatch()
}

func (d *eventDispatcherImpl) dispatch() {
	for {
		select {
		case releaseEvent := <-d.eventsChannel:
			// a publish run has been requested
			go func(releaseEvent githubapi.ReleaseEvent) {
				// try to obtain a worker job channel that is available.
				// this will block until a worker is idle
				eventsChannel := <-d.workerPool

				// dispatch the event to the worker job channel
				eventsChannel <- releaseEvent
			}(releaseEvent)
		}
	}
}

// EventWorker processes release events pushed to channels
type EventWorker interface {
	ListenToEventChannels()
	RunPublishPipeline(githubapi.ReleaseEvent)
}

type eventWorkerImpl struct {
	waitGroup     *sync.WaitGroup
	stopChannel   <-chan struct{}
	workerPool    chan chan githubapi.ReleaseEvent
	eventsChannel chan githubapi.ReleaseEvent
	service       Service
}

// NewEventWorker returns a releaser.EventWorker to handle events channeled by releaser.EventDispatcher
func NewEventWorker(stopChannel <-chan struct{}, waitGroup *sync.WaitGroup, workerPool chan chan githubapi.ReleaseEvent, service Service) EventWorker {
	return &eventWorkerImpl{
		waitGroup:     waitGroup,
		stopChannel:   stopChannel,
		workerPool:    workerPool,
		eventsChannel: make(chan githubapi.ReleaseEvent),
		service:       service,
	}
}

func (w *eventWorkerImpl) ListenToEventChannels() {
	go func() {
		// handle release events via channels
		log.Debug().Msg("Listening to release events channels...")
		for {
			// register the current worker into the worker queue.
			w.workerPool <- w.eventsChannel

			select {
			case releaseEvent := <-w.eventsChannel:
				go func() {
					w.waitGroup.Add(1)
					w.RunPublishPipeline(releaseEvent)
					w.waitGroup.Done()
				}()
			case <-w.stopChannel:
				log.Debug().Msg("Stopping release event worker...")
				return
			}
		}
	}()
}

func (w *eventWorkerImpl) RunPublishPipeline(releaseEvent githubapi.ReleaseEvent) {

	// each run gets its own root span, the webhook request has long been answered
	span := opentracing.StartSpan("releaser:RunPublishPipeline")
	defer span.Finish()
	ctx := opentracing.ContextWithSpan(context.Background(), span)

	run, err := w.service.PublishRelease(ctx, releaseEvent)
	if err != nil {
		if errors.Is(err, ErrIgnoredEvent) {
			return
		}

		logEvent := log.Error().Err(err)
		if run != nil {
			logEvent = logEvent.
				Str("runID", run.ID).
				Str("failedStep", string(run.FailedStep()))
		}
		logEvent.Msgf("Publishing release %v for repository %v failed", releaseEvent.Release.TagName, releaseEvent.GetRepoFullName())

		return
	}

	log.Info().
		Str("runID", run.ID).
		Str("pullRequestURL", run.PullRequestURL).
		Strs("artifacts", run.Artifacts).
		Msgf("Published release %v for repository %v", releaseEvent.Release.TagName, releaseEvent.GetRepoFullName())
}
