package cron

import (
	"fmt"
	"log"
	"time"

	"github.com/sahilchouksey/college-compass/database"
	"github.com/sahilchouksey/college-compass/model"
)

// AuditReferences walks every reference-carrying document and reports
// ids that no longer resolve. Deleting a referenced record leaves the
// pointing documents untouched, so dangling ids are expected over time;
// this job only reports them, it never mutates catalog data.
func (m *CronManager) AuditReferences() {
	jobName := "audit_references"

	dangling := []map[string]interface{}{}
	checked := 0

	exists := map[string]map[string]bool{}
	lookup := func(collection, id string) bool {
		if id == "" {
			return true
		}
		byID, ok := exists[collection]
		if !ok {
			byID = map[string]bool{}
			docs, err := m.store.List(collection, "name")
			if err != nil {
				log.Printf("[CRON] Failed to load %s for audit: %v", collection, err)
			} else {
				for _, doc := range docs {
					byID[doc.ID] = true
				}
			}
			exists[collection] = byID
		}
		return byID[id]
	}

	record := func(fromCollection, fromID, field, collection, id string) {
		checked++
		if lookup(collection, id) {
			return
		}
		dangling = append(dangling, map[string]interface{}{
			"fromCollection": fromCollection,
			"fromId":         fromID,
			"field":          field,
			"collection":     collection,
			"id":             id,
		})
	}

	collegeDocs, err := m.store.List(database.CollectionColleges, "name")
	if err != nil {
		m.logJobError(jobName, fmt.Errorf("failed to load colleges: %w", err))
		return
	}
	for _, doc := range collegeDocs {
		college, err := model.DecodeCollege(doc)
		if err != nil {
			log.Printf("[CRON] Skipping undecodable college %s: %v", doc.ID, err)
			continue
		}
		record(database.CollectionColleges, doc.ID, "stateId", database.CollectionStates, college.StateID)
		record(database.CollectionColleges, doc.ID, "cityId", database.CollectionCities, college.CityID)
		record(database.CollectionColleges, doc.ID, "approvalId", database.CollectionApprovals, college.ApprovalID)
		record(database.CollectionColleges, doc.ID, "affiliationId", database.CollectionAffiliations, college.AffiliationID)
		for _, id := range college.Streams {
			record(database.CollectionColleges, doc.ID, "streams", database.CollectionStreams, id)
		}
		for _, ref := range college.Courses {
			record(database.CollectionColleges, doc.ID, "courses", database.CollectionCourses, ref.CourseID)
		}
		for _, id := range college.Recruiters {
			record(database.CollectionColleges, doc.ID, "recruiters", database.CollectionRecruiters, id)
		}
		for _, id := range college.EntranceExams {
			record(database.CollectionColleges, doc.ID, "entranceExams", database.CollectionEntranceExams, id)
		}
	}

	cityDocs, err := m.store.List(database.CollectionCities, "name")
	if err != nil {
		log.Printf("[CRON] Failed to load cities for audit: %v", err)
	} else {
		for _, doc := range cityDocs {
			city, err := model.DecodeCity(doc)
			if err != nil {
				continue
			}
			record(database.CollectionCities, doc.ID, "stateId", database.CollectionStates, city.StateID)
		}
	}

	courseDocs, err := m.store.List(database.CollectionCourses, "name")
	if err != nil {
		log.Printf("[CRON] Failed to load courses for audit: %v", err)
	} else {
		for _, doc := range courseDocs {
			course, err := model.DecodeCourse(doc)
			if err != nil {
				continue
			}
			record(database.CollectionCourses, doc.ID, "streamId", database.CollectionStreams, course.StreamID)
		}
	}

	report := map[string]interface{}{
		"job":           jobName,
		"checked":       checked,
		"danglingCount": len(dangling),
		"dangling":      dangling,
		"createdAt":     time.Now().UnixMilli(),
	}
	if _, err := m.store.Add(database.CollectionAuditReports, report); err != nil {
		m.logJobError(jobName, fmt.Errorf("failed to save audit report: %w", err))
		return
	}

	m.logJobComplete(jobName, fmt.Sprintf("Checked %d references, found %d dangling", checked, len(dangling)))
}

// EnquiryDigest counts enquiries received over the last day and the
// pending backlog, for the morning log.
func (m *CronManager) EnquiryDigest() {
	jobName := "enquiry_digest"

	docs, err := m.store.List(database.CollectionEnquiries, "createdAt")
	if err != nil {
		m.logJobError(jobName, fmt.Errorf("failed to load enquiries: %w", err))
		return
	}

	cutoff := time.Now().Add(-24 * time.Hour).UnixMilli()
	recent := 0
	pending := 0
	for _, doc := range docs {
		enquiry, err := model.DecodeEnquiry(doc)
		if err != nil {
			log.Printf("[CRON] Skipping undecodable enquiry %s: %v", doc.ID, err)
			continue
		}
		if enquiry.CreatedAt >= cutoff {
			recent++
		}
		if enquiry.Status == model.EnquiryStatusPending {
			pending++
		}
	}

	m.logJobComplete(jobName, fmt.Sprintf("%d enquiries in the last 24h, %d pending total", recent, pending))
}
