package catalog

import (
	"log"
	"sync"

	"github.com/sahilchouksey/college-compass/database"
	"github.com/sahilchouksey/college-compass/model"
	"github.com/sahilchouksey/college-compass/utils/cache"
)

// Service reconciles denormalized college documents with the display
// names catalog pages need. It fetches full collections and joins and
// filters them in memory; there is no server-side pagination.
type Service struct {
	store database.Storage
	cache *cache.RedisCache
}

// NewService creates a catalog service. The cache is optional; a nil
// cache disables name caching.
func NewService(store database.Storage, redisCache *cache.RedisCache) *Service {
	return &Service{
		store: store,
		cache: redisCache,
	}
}

// CollegeView is a college with its location references resolved to
// display names for listing cards and search.
type CollegeView struct {
	College     model.College `json:"college"`
	StateName   string        `json:"stateName,omitempty"`
	CityName    string        `json:"cityName,omitempty"`
	StreamNames []string      `json:"streamNames,omitempty"`
}

// CourseFee is one college course resolved to its name with the
// college's fee for it.
type CourseFee struct {
	CourseID string `json:"courseId"`
	Name     string `json:"name,omitempty"`
	Fee      string `json:"fee,omitempty"`
	Missing  bool   `json:"missing,omitempty"`
}

// CollegeDetail is the full detail-page payload with every reference
// array resolved.
type CollegeDetail struct {
	CollegeView
	ApprovalName    string      `json:"approvalName,omitempty"`
	AffiliationName string      `json:"affiliationName,omitempty"`
	Courses         []CourseFee `json:"courses,omitempty"`
	RecruiterNames  []string    `json:"recruiterNames,omitempty"`
	ExamNames       []string    `json:"examNames,omitempty"`
}

// StreamDetail is a stream with its member courses and colleges.
type StreamDetail struct {
	Stream   model.Stream   `json:"stream"`
	Courses  []model.Course `json:"courses"`
	Colleges []CollegeView  `json:"colleges"`
}

// CourseDetail is a course with its stream name and offering colleges.
type CourseDetail struct {
	Course     model.Course  `json:"course"`
	StreamName string        `json:"streamName,omitempty"`
	Colleges   []CollegeView `json:"colleges"`
}

// HomePayload backs the homepage: featured colleges plus catalog counts.
type HomePayload struct {
	Featured     []CollegeView  `json:"featured"`
	Streams      []model.Stream `json:"streams"`
	CollegeCount int            `json:"collegeCount"`
	StreamCount  int            `json:"streamCount"`
	CourseCount  int            `json:"courseCount"`
}

// Colleges fetches the full college set, resolves display names and
// applies the filter dimensions by logical AND.
func (s *Service) Colleges(f Filter) ([]CollegeView, error) {
	views, err := s.collegeViews()
	if err != nil {
		return nil, err
	}

	// Navigational slug parameters resolve to ids before filtering. An
	// unresolvable slug skips its dimension rather than failing the page.
	streamIDs := f.StreamIDs
	if f.StreamSlug != "" {
		if id, ok := s.resolveSlugToID(database.CollectionStreams, f.StreamSlug); ok {
			streamIDs = append(streamIDs, id)
		}
	}
	courseIDs := f.CourseIDs
	if f.CourseSlug != "" {
		if id, ok := s.resolveSlugToID(database.CollectionCourses, f.CourseSlug); ok {
			courseIDs = append(courseIDs, id)
		}
	}

	views = Search(views, f.Query)
	views = FilterByStreams(views, streamIDs)
	views = FilterByCourses(views, courseIDs)
	views = FilterByStates(views, f.StateIDs)
	views = FilterByCities(views, f.CityIDs)
	return views, nil
}

// CollegeBySlug resolves a college by explicit slug, then nameSlug, then
// literal name, and returns the fully joined detail payload.
func (s *Service) CollegeBySlug(slug string) (*CollegeDetail, error) {
	doc, err := s.findBySlug(database.CollectionColleges, slug)
	if err != nil {
		return nil, err
	}

	college, err := model.DecodeCollege(*doc)
	if err != nil {
		return nil, err
	}

	detail := &CollegeDetail{CollegeView: CollegeView{College: college}}

	var wg sync.WaitGroup
	wg.Add(4)
	go func() {
		defer wg.Done()
		detail.StateName = s.resolveRef(database.CollectionStates, college.StateID).Name
		detail.CityName = s.resolveRef(database.CollectionCities, college.CityID).Name
	}()
	go func() {
		defer wg.Done()
		detail.ApprovalName = s.resolveRef(database.CollectionApprovals, college.ApprovalID).Name
		detail.AffiliationName = s.resolveRef(database.CollectionAffiliations, college.AffiliationID).Name
	}()
	go func() {
		defer wg.Done()
		detail.StreamNames = refNames(s.resolveRefs(database.CollectionStreams, college.Streams))
		detail.RecruiterNames = refNames(s.resolveRefs(database.CollectionRecruiters, college.Recruiters))
		detail.ExamNames = refNames(s.resolveRefs(database.CollectionEntranceExams, college.EntranceExams))
	}()
	go func() {
		defer wg.Done()
		detail.Courses = s.resolveCourseFees(college.Courses)
	}()
	wg.Wait()

	return detail, nil
}

// Streams lists every stream ordered by name.
func (s *Service) Streams() ([]model.Stream, error) {
	docs, err := s.store.List(database.CollectionStreams, "name")
	if err != nil {
		return nil, err
	}
	streams := make([]model.Stream, 0, len(docs))
	for _, doc := range docs {
		stream, err := model.DecodeStream(doc)
		if err != nil {
			log.Println("skipping undecodable stream:", err)
			continue
		}
		streams = append(streams, stream)
	}
	return streams, nil
}

// StreamBySlug resolves a stream and gathers its courses and the
// colleges offering it.
func (s *Service) StreamBySlug(slug string) (*StreamDetail, error) {
	docs, err := s.store.List(database.CollectionStreams, "name")
	if err != nil {
		return nil, err
	}
	doc, ok := ResolveBySlugOrName(docs, slug)
	if !ok {
		return nil, database.ErrNotFound
	}
	stream, err := model.DecodeStream(*doc)
	if err != nil {
		return nil, err
	}

	detail := &StreamDetail{Stream: stream, Courses: []model.Course{}, Colleges: []CollegeView{}}

	// Courses of the stream come from a field-equality fetch; member
	// colleges from an in-memory pass over the full set. A failure in
	// either section leaves that section empty without failing the page.
	courseDocs, err := s.store.FindByField(database.CollectionCourses, "streamId", stream.ID)
	if err != nil {
		log.Println("failed to load stream courses:", err)
	} else {
		for _, cd := range courseDocs {
			course, err := model.DecodeCourse(cd)
			if err != nil {
				log.Println("skipping undecodable course:", err)
				continue
			}
			detail.Courses = append(detail.Courses, course)
		}
	}

	views, err := s.collegeViews()
	if err != nil {
		log.Println("failed to load stream colleges:", err)
	} else {
		detail.Colleges = FilterByStreams(views, []string{stream.ID})
	}

	return detail, nil
}

// Courses lists every course ordered by name.
func (s *Service) Courses() ([]model.Course, error) {
	docs, err := s.store.List(database.CollectionCourses, "name")
	if err != nil {
		return nil, err
	}
	courses := make([]model.Course, 0, len(docs))
	for _, doc := range docs {
		course, err := model.DecodeCourse(doc)
		if err != nil {
			log.Println("skipping undecodable course:", err)
			continue
		}
		courses = append(courses, course)
	}
	return courses, nil
}

// CourseBySlug resolves a course and gathers the colleges offering it.
func (s *Service) CourseBySlug(slug string) (*CourseDetail, error) {
	docs, err := s.store.List(database.CollectionCourses, "name")
	if err != nil {
		return nil, err
	}
	doc, ok := ResolveBySlugOrName(docs, slug)
	if !ok {
		return nil, database.ErrNotFound
	}
	course, err := model.DecodeCourse(*doc)
	if err != nil {
		return nil, err
	}

	detail := &CourseDetail{Course: course, Colleges: []CollegeView{}}
	detail.StreamName = s.resolveRef(database.CollectionStreams, course.StreamID).Name

	views, err := s.collegeViews()
	if err != nil {
		log.Println("failed to load course colleges:", err)
	} else {
		detail.Colleges = FilterByCourses(views, []string{course.ID})
	}

	return detail, nil
}

// Home assembles the homepage payload. Each section degrades
// independently on failure.
func (s *Service) Home() (*HomePayload, error) {
	payload := &HomePayload{Featured: []CollegeView{}, Streams: []model.Stream{}}

	views, err := s.collegeViews()
	if err != nil {
		log.Println("failed to load colleges for home:", err)
	} else {
		payload.CollegeCount = len(views)
		for _, v := range views {
			if v.College.Featured {
				payload.Featured = append(payload.Featured, v)
			}
		}
	}

	streams, err := s.Streams()
	if err != nil {
		log.Println("failed to load streams for home:", err)
	} else {
		payload.Streams = streams
		payload.StreamCount = len(streams)
	}

	courseDocs, err := s.store.List(database.CollectionCourses, "name")
	if err != nil {
		log.Println("failed to load courses for home:", err)
	} else {
		payload.CourseCount = len(courseDocs)
	}

	return payload, nil
}

// CityOptions returns the city filter options for the selected states.
func (s *Service) CityOptions(stateIDs []string) ([]model.City, error) {
	docs, err := s.store.List(database.CollectionCities, "name")
	if err != nil {
		return nil, err
	}
	cities := make([]model.City, 0, len(docs))
	for _, doc := range docs {
		city, err := model.DecodeCity(doc)
		if err != nil {
			log.Println("skipping undecodable city:", err)
			continue
		}
		cities = append(cities, city)
	}
	return CitiesForStates(cities, stateIDs), nil
}

// States returns every state ordered by name.
func (s *Service) States() ([]model.State, error) {
	docs, err := s.store.List(database.CollectionStates, "name")
	if err != nil {
		return nil, err
	}
	states := make([]model.State, 0, len(docs))
	for _, doc := range docs {
		state, err := model.DecodeState(doc)
		if err != nil {
			log.Println("skipping undecodable state:", err)
			continue
		}
		states = append(states, state)
	}
	return states, nil
}

// collegeViews fetches the full college set and resolves state and city
// names per college in parallel. Undecodable documents are skipped, not
// fatal.
func (s *Service) collegeViews() ([]CollegeView, error) {
	docs, err := s.store.List(database.CollectionColleges, "name")
	if err != nil {
		return nil, err
	}

	views := make([]CollegeView, 0, len(docs))
	for _, doc := range docs {
		college, err := model.DecodeCollege(doc)
		if err != nil {
			log.Println("skipping undecodable college:", err)
			continue
		}
		views = append(views, CollegeView{College: college})
	}

	var wg sync.WaitGroup
	for i := range views {
		wg.Add(1)
		go func(v *CollegeView) {
			defer wg.Done()
			v.StateName = s.resolveRef(database.CollectionStates, v.College.StateID).Name
			v.CityName = s.resolveRef(database.CollectionCities, v.College.CityID).Name
			v.StreamNames = refNames(s.resolveRefs(database.CollectionStreams, v.College.Streams))
		}(&views[i])
	}
	wg.Wait()

	return views, nil
}

// resolveCourseFees resolves each course ref to its name, carrying the
// college's fee alongside. Missing courses stay as explicit missing
// entries.
func (s *Service) resolveCourseFees(refs []model.CourseRef) []CourseFee {
	fees := make([]CourseFee, len(refs))

	var wg sync.WaitGroup
	for i, ref := range refs {
		wg.Add(1)
		go func(i int, ref model.CourseRef) {
			defer wg.Done()
			resolved := s.resolveRef(database.CollectionCourses, ref.CourseID)
			fees[i] = CourseFee{
				CourseID: ref.CourseID,
				Name:     resolved.Name,
				Fee:      ref.Fee,
				Missing:  resolved.Missing,
			}
		}(i, ref)
	}
	wg.Wait()

	return fees
}

// resolveSlugToID maps a navigational slug to a document id.
func (s *Service) resolveSlugToID(collection, slug string) (string, bool) {
	docs, err := s.store.List(collection, "name")
	if err != nil {
		log.Println("failed to resolve slug against", collection, ":", err)
		return "", false
	}
	doc, ok := ResolveBySlugOrName(docs, slug)
	if !ok {
		return "", false
	}
	return doc.ID, true
}

// findBySlug looks a document up by explicit slug first, then nameSlug
// via field equality, then falls back to a full scan matching the
// literal name.
func (s *Service) findBySlug(collection, slug string) (*database.Document, error) {
	if slug == "" {
		return nil, database.ErrNotFound
	}

	for _, field := range []string{"slug", "nameSlug"} {
		docs, err := s.store.FindByField(collection, field, slug)
		if err != nil {
			return nil, err
		}
		if len(docs) > 0 {
			return &docs[0], nil
		}
	}

	docs, err := s.store.List(collection, "name")
	if err != nil {
		return nil, err
	}
	if doc, ok := ResolveBySlugOrName(docs, slug); ok {
		return doc, nil
	}
	return nil, database.ErrNotFound
}
