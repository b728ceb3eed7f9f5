package avroschema

import (
	"bytes"
	"fmt"
	"sort"
	"sync"

	"github.com/olekukonko/tablewriter"
	"github.com/riferrei/srclient"
	"github.com/tryfix/errors"
	"github.com/tryfix/log"
)

// Version is the type to hold default register vrsion options
type Version int

const (
	//VersionLatest constant hold the flag to register the latest version of the subject
	VersionLatest Version = -1
	//VersionAll constant hold the flag to register all the versions of the subject
	VersionAll Version = -2
)

// String returns the registed version type
func (v Version) String() string {

	if v == VersionLatest {
		return `Latest`
	}

	if v == VersionAll {
		return `All`
	}

	return fmt.Sprint(int(v))
}

// Subject holds the Schema information of the registered subject
type Subject struct {
	Schema  string     `json:"schema"`  // The definition stored in the registry
	Subject string     `json:"subject"` // Subject where the schema is registered for
	Version int        `json:"version"` // Version within this subject
	Id      int        `json:"id"`      // Registry's unique id
	Type    SchemaType `json:"type"`
}

// Registry type holds schema registry details
type Registry struct {
	schemas map[string]map[int]*Encoder // subject/version/encoder
	idMap   map[int]*Encoder
	codecs  map[string]Codec // subject/local codec
	client  srclient.ISchemaRegistryClient
	mu      *sync.RWMutex
	options *options
	logger  log.Logger
	bgSync  *backgroundSync
}

// NewRegistry returns pointer to a registry client for the given url
func NewRegistry(url string, opts ...Option) (*Registry, error) {
	options := newOptions(opts)

	client := options.client
	if client == nil {
		if url == `` {
			return nil, errors.New(`schema registry url is empty`)
		}
		client = srclient.CreateSchemaRegistryClient(url)
	}

	r := &Registry{
		schemas: make(map[string]map[int]*Encoder),
		idMap:   make(map[int]*Encoder),
		codecs:  make(map[string]Codec),
		client:  client,
		mu:      new(sync.RWMutex),
		options: options,
		logger:  options.logger.NewLog(log.Prefixed(`schemaregistry.registry`)),
	}

	return r, nil
}

// Register binds codec to the given subject and version of the schema registry.
//
// Versions whose definition is the codec's own get a read/write Encoder. Other
// versions of an avro subject are registered for decoding only, their data is
// resolved into the codec's record type.
func (r *Registry) Register(subject string, version Version, codec Codec) error {
	if version == VersionAll {
		versions, err := r.client.GetSchemaVersions(subject)
		if err != nil {
			return errors.WithPrevious(err, fmt.Sprintf(`cannot fetch versions of subject [%s]`, subject))
		}
		for _, v := range versions {
			if err := r.Register(subject, Version(v), codec); err != nil {
				return err
			}
		}
		return nil
	}

	remote, err := r.fetch(subject, version)
	if err != nil {
		if !r.options.autoRegister {
			return errors.WithPrevious(err, fmt.Sprintf(`cannot fetch subject [%s][%s]`, subject, version))
		}

		info := codec.Info()
		remote, err = r.client.CreateSchema(subject, info.Schema, info.Type.registryType())
		if err != nil {
			return errors.WithPrevious(err, fmt.Sprintf(`cannot create subject [%s]`, subject))
		}
		r.logger.Info(fmt.Sprintf(`subject [%s] created with id [%d]`, subject, remote.ID()))
	}

	replaced, err := r.add(subject, remote, codec)
	if err != nil {
		return err
	}

	if replaced {
		r.logger.Warn(fmt.Sprintf(`subject [%s][%d] already registred, replaced`, subject, remote.Version()))
	}

	r.mu.Lock()
	r.codecs[subject] = codec
	r.mu.Unlock()

	r.logger.Info(fmt.Sprintf(`subject [%s][%s] registred`, subject, version))

	return nil
}

func (r *Registry) fetch(subject string, version Version) (*srclient.Schema, error) {
	if version == VersionLatest {
		return r.client.GetLatestSchema(subject)
	}

	return r.client.GetSchemaByVersion(subject, int(version))
}

// add stores an encoder for the remote schema and reports whether one was
// already registered for its version.
func (r *Registry) add(subject string, remote *srclient.Schema, codec Codec) (bool, error) {
	decoder, readOnly, err := matchCodec(codec, remote.Schema())
	if err != nil {
		return false, errors.WithPrevious(err, fmt.Sprintf(`subject [%s][%d] does not match codec %s`,
			subject, remote.Version(), codec.Info().Name))
	}

	s := &Subject{
		Schema:  remote.Schema(),
		Subject: subject,
		Version: remote.Version(),
		Id:      remote.ID(),
		Type:    codec.Info().Type,
	}

	e := newEncoder(r, s, decoder, readOnly)

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.schemas[subject] == nil {
		r.schemas[subject] = make(map[int]*Encoder)
	}
	_, replaced := r.schemas[subject][s.Version]
	r.schemas[subject][s.Version] = e
	r.idMap[s.Id] = e

	return replaced, nil
}

// matchCodec returns the codec to use for definition and whether it is only
// able to decode.
func matchCodec(codec Codec, definition string) (Codec, bool, error) {
	matcher, ok := codec.(definitionMatcher)
	if !ok {
		return codec, false, nil
	}

	same, err := matcher.Matches(definition)
	if err != nil {
		return nil, false, err
	}

	if same {
		return codec, false, nil
	}

	resolver, ok := codec.(writerResolver)
	if !ok {
		return nil, false, errors.New(`registry definition differs from the codec definition`)
	}

	decoder, err := resolver.WithWriterSchema(definition)
	if err != nil {
		return nil, false, err
	}

	return decoder, true, nil
}

// Sync function start the background schema sync
//
// Newly Created Schemas will register in background and application does not require any restart
func (r *Registry) Sync() error {
	if !r.options.backGroundSync {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.bgSync != nil {
		return nil
	}

	if r.options.syncInterval <= 0 {
		return errors.New(fmt.Sprintf(`invalid background sync interval %s`, r.options.syncInterval))
	}

	r.bgSync = startSync(r.options.syncInterval, r.options.logger, r)

	return nil
}

// Close stops the background sync
func (r *Registry) Close() {
	r.mu.Lock()
	bg := r.bgSync
	r.bgSync = nil
	r.mu.Unlock()

	if bg != nil {
		bg.stop()
	}
}

// WithSchema return the specific encoder which registered at the initialization under the subject and version
func (r *Registry) WithSchema(subject string, version int) *Encoder {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.schemas[subject][version]
	if !ok {
		panic(fmt.Sprintf(`schemaregistry.registry: unregistred subject [%s][%d]`, subject, version))
	}

	return e
}

// WithLatestSchema returns the latest encoder registered under given subject.
// Versions registered for decoding only are skipped while a writable one exists.
func (r *Registry) WithLatestSchema(subject string) *Encoder {
	r.mu.RLock()
	defer r.mu.RUnlock()

	versions, ok := r.schemas[subject]
	if !ok {
		panic(fmt.Sprintf(`schemaregistry.registry: unregistred subject [%s]`, subject))
	}

	var latest, latestWritable *Encoder
	for _, e := range versions {
		if latest == nil || e.subject.Version > latest.subject.Version {
			latest = e
		}
		if !e.readOnly && (latestWritable == nil || e.subject.Version > latestWritable.subject.Version) {
			latestWritable = e
		}
	}

	if latestWritable != nil {
		return latestWritable
	}

	return latest
}

func (r *Registry) GenericEncoder() *GenericEncoder {
	return &GenericEncoder{
		registry: r,
	}
}

func (r *Registry) decode(data []byte) (interface{}, error) {
	schemaID, err := decodePrefix(data)
	if err != nil {
		return nil, err
	}

	r.mu.RLock()
	encoder, ok := r.idMap[schemaID]
	r.mu.RUnlock()
	if !ok {
		return nil, errors.New(fmt.Sprintf(`schema id [%d] dose not registred`, schemaID))
	}

	return encoder.codec.Decode(data[prefixSize:])
}

func (r *Registry) subjectRegistered(subject string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.codecs[subject]
	return ok
}

func (r *Registry) hasVersion(subject string, version Version) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.schemas[subject][int(version)]
	return ok
}

func (r *Registry) codec(subject string) Codec {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.codecs[subject]
}

// Print logs the registered subjects as a table
func (r *Registry) Print() {
	b := new(bytes.Buffer)
	table := tablewriter.NewWriter(b)
	table.SetHeader([]string{`Schema Id`, `subject`, `version`, `type`, `mode`})
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT})
	table.SetAutoFormatHeaders(true)

	r.mu.RLock()
	var encoders []*Encoder
	for _, subject := range r.schemas {
		for _, version := range subject {
			encoders = append(encoders, version)
		}
	}
	r.mu.RUnlock()

	sort.Slice(encoders, func(i, j int) bool {
		if encoders[i].subject.Subject != encoders[j].subject.Subject {
			return encoders[i].subject.Subject < encoders[j].subject.Subject
		}
		return encoders[i].subject.Version < encoders[j].subject.Version
	})

	for _, e := range encoders {
		mode := `read/write`
		if e.readOnly {
			mode = `read`
		}
		table.Append([]string{
			fmt.Sprint(e.subject.Id),
			e.subject.Subject,
			fmt.Sprint(Version(e.subject.Version)),
			string(e.subject.Type),
			mode,
		})
	}

	table.Render()
	r.logger.Info(fmt.Sprintf("schemas\n%s", b.String()))
}
