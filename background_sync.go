package avroschema

import (
	"fmt"
	"sync"
	"time"

	"github.com/tryfix/log"
)

type backgroundSync struct {
	syncInterval time.Duration
	registry     *Registry
	logger       log.Logger
	done         chan struct{}
	wg           sync.WaitGroup
}

// startSync polls the schema registry for new versions of registered
// subjects until stop is called.
func startSync(syncInterval time.Duration, logger log.Logger, registry *Registry) *backgroundSync {
	s := &backgroundSync{
		registry:     registry,
		syncInterval: syncInterval,
		logger:       logger.NewLog(log.Prefixed(`BGSync`)),
		done:         make(chan struct{}),
	}

	s.wg.Add(1)
	go s.run()

	s.logger.Debug(`New Schema check background routine started`)

	return s
}

func (s *backgroundSync) run() {
	defer s.wg.Done()

	ticker := time.NewTicker(s.syncInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.checkRegistryAndAdd()
		case <-s.done:
			return
		}
	}
}

func (s *backgroundSync) stop() {
	close(s.done)
	s.wg.Wait()
	s.logger.Debug(`New Schema check background routine stopped`)
}

func (s *backgroundSync) checkRegistryAndAdd() {
	s.logger.Debug(`Looking for new Schemas...`)
	added := 0
	defer func() {
		s.logger.Debug(fmt.Sprintf(`Looking for new Schemas completed, %d schema/s added`, added))
	}()

	// Fetch schemas
	subjects, err := s.registry.client.GetSubjects()
	if err != nil {
		s.logger.Error(fmt.Sprintf(`Error getting subjects due to %s`, err.Error()))
		return
	}

	// If the subject is registered, check for new versions
	for _, subjectName := range subjects {
		if !s.registry.subjectRegistered(subjectName) {
			continue
		}

		versions, err := s.registry.client.GetSchemaVersions(subjectName)
		if err != nil {
			s.logger.Error(fmt.Sprintf(`Error getting schema versions due to %s`, err.Error()))
			continue
		}

		for _, version := range versions {
			if s.registry.hasVersion(subjectName, Version(version)) {
				continue
			}

			schema, err := s.registry.client.GetSchemaByVersion(subjectName, version)
			if err != nil {
				s.logger.Error(fmt.Sprintf(`Error getting schema by version due to %s`, err.Error()))
				continue
			}

			if _, err := s.registry.add(subjectName, schema, s.registry.codec(subjectName)); err != nil {
				s.logger.Error(fmt.Sprintf("New Schema add failed. [%s:%d] due to %s",
					subjectName, schema.Version(), err.Error()))
				continue
			}

			s.logger.Info(fmt.Sprintf("New Schema registered. %s:%d", subjectName, schema.Version()))
			added++
		}
	}

	if added > 0 {
		s.registry.Print()
	}
}
