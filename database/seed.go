package database

import (
	"fmt"
	"log"
)

// Seed loads a starter set of reference data. Each collection is only
// seeded when it is empty, so re-running the seeder is safe.
func Seed(store Storage) error {
	type seedSet struct {
		collection string
		docs       []map[string]interface{}
	}

	// Cities and courses reference their parents by name; the ids are
	// resolved after the parents are inserted.
	sets := []seedSet{
		{CollectionStates, []map[string]interface{}{
			{"name": "Madhya Pradesh"},
			{"name": "Maharashtra"},
			{"name": "Karnataka"},
			{"name": "Delhi"},
		}},
		{CollectionStreams, []map[string]interface{}{
			{"name": "Engineering", "slug": "engineering"},
			{"name": "Management", "slug": "management"},
			{"name": "Medical", "slug": "medical"},
			{"name": "Law", "slug": "law"},
		}},
		{CollectionApprovals, []map[string]interface{}{
			{"name": "AICTE"},
			{"name": "UGC"},
			{"name": "NMC"},
		}},
		{CollectionAffiliations, []map[string]interface{}{
			{"name": "Autonomous"},
			{"name": "Deemed University"},
			{"name": "State University"},
		}},
	}

	for _, set := range sets {
		if err := seedCollection(store, set.collection, set.docs); err != nil {
			return err
		}
	}

	stateIDs, err := idsByName(store, CollectionStates)
	if err != nil {
		return err
	}
	cities := []map[string]interface{}{
		{"name": "Indore", "stateId": stateIDs["Madhya Pradesh"]},
		{"name": "Bhopal", "stateId": stateIDs["Madhya Pradesh"]},
		{"name": "Mumbai", "stateId": stateIDs["Maharashtra"]},
		{"name": "Pune", "stateId": stateIDs["Maharashtra"]},
		{"name": "Bengaluru", "stateId": stateIDs["Karnataka"]},
		{"name": "New Delhi", "stateId": stateIDs["Delhi"]},
	}
	if err := seedCollection(store, CollectionCities, cities); err != nil {
		return err
	}

	streamIDs, err := idsByName(store, CollectionStreams)
	if err != nil {
		return err
	}
	courses := []map[string]interface{}{
		{"name": "B.Tech Computer Science", "slug": "btech-computer-science", "streamId": streamIDs["Engineering"]},
		{"name": "B.Tech Mechanical", "slug": "btech-mechanical", "streamId": streamIDs["Engineering"]},
		{"name": "MBA", "slug": "mba", "streamId": streamIDs["Management"]},
		{"name": "BBA", "slug": "bba", "streamId": streamIDs["Management"]},
		{"name": "MBBS", "slug": "mbbs", "streamId": streamIDs["Medical"]},
		{"name": "LLB", "slug": "llb", "streamId": streamIDs["Law"]},
	}
	return seedCollection(store, CollectionCourses, courses)
}

func seedCollection(store Storage, collection string, docs []map[string]interface{}) error {
	existing, err := store.List(collection, "name")
	if err != nil {
		return fmt.Errorf("failed to inspect %s: %w", collection, err)
	}
	if len(existing) > 0 {
		log.Printf("Skipping %s: %d documents already present", collection, len(existing))
		return nil
	}

	for _, doc := range docs {
		if _, err := store.Add(collection, doc); err != nil {
			return fmt.Errorf("failed to seed %s: %w", collection, err)
		}
	}
	log.Printf("Seeded %s with %d documents", collection, len(docs))
	return nil
}

func idsByName(store Storage, collection string) (map[string]string, error) {
	docs, err := store.List(collection, "name")
	if err != nil {
		return nil, err
	}
	byName := make(map[string]string, len(docs))
	for _, doc := range docs {
		if name, ok := doc.Data["name"].(string); ok {
			byName[name] = doc.ID
		}
	}
	return byName, nil
}
