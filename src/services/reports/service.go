package reports

import (
	"context"
	"time"

	DB "Backend-PlacementCell/src/database"
	"Backend-PlacementCell/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// OfferRow is one placed student in an offers report.
type OfferRow struct {
	CompanyName string
	JobTitle    string
	StudentCode string
	StudentName string
	CTC         float64
}

// DepartmentSummary is one row of the per-department placement summary.
type DepartmentSummary struct {
	DepartmentName string `json:"departmentName"`
	TotalStudents  int64  `json:"totalStudents"`
	PlacedStudents int64  `json:"placedStudents"`
}

// PlacementSummary is the aggregate statistics payload.
type PlacementSummary struct {
	TotalStudents  int64               `json:"totalStudents"`
	PlacedStudents int64               `json:"placedStudents"`
	PlacedPercent  float64             `json:"placedPercent"`
	TotalCompanies int64               `json:"totalCompanies"`
	TotalDrives    int64               `json:"totalDrives"`
	Departments    []DepartmentSummary `json:"departments"`
}

// GatherOfferRows walks the published rounds and joins every Selected
// candidate to its student, job and company.
func GatherOfferRows() ([]OfferRow, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cursor, err := DB.RecruitmentRoundCollection.Find(ctx, bson.M{"published": true})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	jobCache := map[primitive.ObjectID]*models.JobRole{}
	companyCache := map[primitive.ObjectID]*models.Company{}
	seen := map[string]struct{}{} // (job, student) pairs already reported

	var rows []OfferRow
	for cursor.Next(ctx) {
		var round models.RecruitmentRound
		if err := cursor.Decode(&round); err != nil {
			continue
		}

		job, ok := jobCache[round.JobID]
		if !ok {
			var j models.JobRole
			if err := DB.JobRoleCollection.FindOne(ctx, bson.M{"_id": round.JobID}).Decode(&j); err != nil {
				continue
			}
			job = &j
			jobCache[round.JobID] = job
		}

		company, ok := companyCache[job.CompanyID]
		if !ok {
			var c models.Company
			if err := DB.CompanyCollection.FindOne(ctx, bson.M{"_id": job.CompanyID}).Decode(&c); err != nil {
				continue
			}
			company = &c
			companyCache[job.CompanyID] = company
		}

		for _, cand := range round.Candidates {
			if cand.Status != models.StatusSelected {
				continue
			}
			key := round.JobID.Hex() + ":" + cand.StudentID.Hex()
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}

			var st models.Student
			if err := DB.StudentCollection.FindOne(ctx, bson.M{"_id": cand.StudentID}).Decode(&st); err != nil {
				continue
			}
			rows = append(rows, OfferRow{
				CompanyName: company.Name,
				JobTitle:    job.Title,
				StudentCode: st.Code,
				StudentName: st.Name,
				CTC:         job.CTC,
			})
		}
	}
	return rows, nil
}

// GatherPlacementSummary collects the aggregate counters.
func GatherPlacementSummary() (*PlacementSummary, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	summary := &PlacementSummary{}

	var err error
	if summary.TotalStudents, err = DB.StudentCollection.CountDocuments(ctx, bson.M{}); err != nil {
		return nil, err
	}
	if summary.PlacedStudents, err = DB.StudentCollection.CountDocuments(ctx, bson.M{"placed": true}); err != nil {
		return nil, err
	}
	if summary.TotalCompanies, err = DB.CompanyCollection.CountDocuments(ctx, bson.M{}); err != nil {
		return nil, err
	}
	if summary.TotalDrives, err = DB.JobRoleCollection.CountDocuments(ctx, bson.M{}); err != nil {
		return nil, err
	}
	if summary.TotalStudents > 0 {
		summary.PlacedPercent = float64(summary.PlacedStudents) / float64(summary.TotalStudents) * 100
	}

	// Per-department split via a single group stage, department names
	// resolved afterwards.
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":    "$departmentId",
			"total":  bson.M{"$sum": 1},
			"placed": bson.M{"$sum": bson.M{"$cond": bson.A{"$placed", 1, 0}}},
		}}},
	}
	cursor, err := DB.StudentCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var row struct {
			ID     primitive.ObjectID `bson:"_id"`
			Total  int64              `bson:"total"`
			Placed int64              `bson:"placed"`
		}
		if err := cursor.Decode(&row); err != nil {
			continue
		}
		name := "Unknown"
		var dep models.Department
		if err := DB.DepartmentCollection.FindOne(ctx, bson.M{"_id": row.ID}).Decode(&dep); err == nil {
			name = dep.Name
		}
		summary.Departments = append(summary.Departments, DepartmentSummary{
			DepartmentName: name,
			TotalStudents:  row.Total,
			PlacedStudents: row.Placed,
		})
	}
	return summary, nil
}

// GatherDepartmentOfferRows joins offer rows with the student's department
// for the department report.
func GatherDepartmentOfferRows() (map[string][]OfferRow, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	rows, err := GatherOfferRows()
	if err != nil {
		return nil, err
	}

	byDept := map[string][]OfferRow{}
	for _, row := range rows {
		var st models.Student
		if err := DB.StudentCollection.FindOne(ctx, bson.M{"code": row.StudentCode}).Decode(&st); err != nil {
			byDept["Unknown"] = append(byDept["Unknown"], row)
			continue
		}
		name := "Unknown"
		var dep models.Department
		if err := DB.DepartmentCollection.FindOne(ctx, bson.M{"_id": st.DepartmentID}).Decode(&dep); err == nil {
			name = dep.Name
		}
		byDept[name] = append(byDept[name], row)
	}
	return byDept, nil
}
