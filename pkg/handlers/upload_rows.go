package handlers

import (
	"fmt"
	"strconv"
	"time"

	"github.com/edusight/retain-engine/pkg/apperrors"
	"github.com/edusight/retain-engine/pkg/models"
)

// Accepted date layouts for upload date columns.
var uploadDateLayouts = []string{time.RFC3339, "2006-01-02"}

func parseStudentRow(row csvRow) (*models.Student, error) {
	studentID, err := requireField(row, "student_id")
	if err != nil {
		return nil, err
	}
	name, err := requireField(row, "name")
	if err != nil {
		return nil, err
	}
	email, err := requireField(row, "email")
	if err != nil {
		return nil, err
	}
	course, err := requireField(row, "course")
	if err != nil {
		return nil, err
	}
	semester, err := intField(row, "semester")
	if err != nil {
		return nil, err
	}

	student := &models.Student{
		StudentID: studentID,
		Name:      name,
		Email:     email,
		Course:    course,
		Semester:  semester,
	}
	if phone := row["phone"]; phone != "" {
		student.Phone = &phone
	}
	return student, nil
}

func parseAttendanceRow(row csvRow) (*models.AttendanceRecord, error) {
	studentID, err := requireField(row, "student_id")
	if err != nil {
		return nil, err
	}
	subject, err := requireField(row, "subject")
	if err != nil {
		return nil, err
	}
	totalClasses, err := intField(row, "total_classes")
	if err != nil {
		return nil, err
	}
	attendedClasses, err := intField(row, "attended_classes")
	if err != nil {
		return nil, err
	}
	percentage, err := floatField(row, "attendance_percentage")
	if err != nil {
		return nil, err
	}
	month, err := requireField(row, "month")
	if err != nil {
		return nil, err
	}
	year, err := intField(row, "year")
	if err != nil {
		return nil, err
	}

	return &models.AttendanceRecord{
		StudentID:            studentID,
		Subject:              subject,
		TotalClasses:         totalClasses,
		AttendedClasses:      attendedClasses,
		AttendancePercentage: percentage,
		Month:                month,
		Year:                 year,
	}, nil
}

func parseAssessmentRow(row csvRow) (*models.AssessmentRecord, error) {
	studentID, err := requireField(row, "student_id")
	if err != nil {
		return nil, err
	}
	subject, err := requireField(row, "subject")
	if err != nil {
		return nil, err
	}
	assessmentType, err := requireField(row, "assessment_type")
	if err != nil {
		return nil, err
	}
	score, err := floatField(row, "score")
	if err != nil {
		return nil, err
	}
	maxScore, err := floatField(row, "max_score")
	if err != nil {
		return nil, err
	}
	percentage, err := floatField(row, "percentage")
	if err != nil {
		return nil, err
	}
	date, err := dateField(row, "date")
	if err != nil {
		return nil, err
	}

	// attempt_number defaults to 1 when the column is absent or empty.
	attemptNumber := 1
	if raw := row["attempt_number"]; raw != "" {
		attemptNumber, err = intField(row, "attempt_number")
		if err != nil {
			return nil, err
		}
	}

	return &models.AssessmentRecord{
		StudentID:      studentID,
		Subject:        subject,
		AssessmentType: assessmentType,
		Score:          score,
		MaxScore:       maxScore,
		Percentage:     percentage,
		Date:           date,
		AttemptNumber:  attemptNumber,
	}, nil
}

func parseFeeRow(row csvRow) (*models.FeeRecord, error) {
	studentID, err := requireField(row, "student_id")
	if err != nil {
		return nil, err
	}
	amountDue, err := floatField(row, "amount_due")
	if err != nil {
		return nil, err
	}
	dueDate, err := dateField(row, "due_date")
	if err != nil {
		return nil, err
	}
	status, err := requireField(row, "status")
	if err != nil {
		return nil, err
	}
	semester, err := intField(row, "semester")
	if err != nil {
		return nil, err
	}

	// amount_paid defaults to 0 when the column is absent or empty.
	amountPaid := 0.0
	if raw := row["amount_paid"]; raw != "" {
		amountPaid, err = floatField(row, "amount_paid")
		if err != nil {
			return nil, err
		}
	}

	record := &models.FeeRecord{
		StudentID:  studentID,
		AmountDue:  amountDue,
		AmountPaid: amountPaid,
		DueDate:    dueDate,
		Status:     status,
		Semester:   semester,
	}

	if raw := row["paid_date"]; raw != "" {
		paidDate, err := dateField(row, "paid_date")
		if err != nil {
			return nil, err
		}
		record.PaidDate = &paidDate
	}

	return record, nil
}

func requireField(row csvRow, name string) (string, error) {
	value := row[name]
	if value == "" {
		return "", fmt.Errorf("%w: missing required column %q", apperrors.ErrMalformedInput, name)
	}
	return value, nil
}

func intField(row csvRow, name string) (int, error) {
	raw, err := requireField(row, name)
	if err != nil {
		return 0, err
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: column %q is not an integer: %s", apperrors.ErrMalformedInput, name, raw)
	}
	return value, nil
}

func floatField(row csvRow, name string) (float64, error) {
	raw, err := requireField(row, name)
	if err != nil {
		return 0, err
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: column %q is not a number: %s", apperrors.ErrMalformedInput, name, raw)
	}
	return value, nil
}

func dateField(row csvRow, name string) (time.Time, error) {
	raw, err := requireField(row, name)
	if err != nil {
		return time.Time{}, err
	}
	for _, layout := range uploadDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: column %q is not a date: %s", apperrors.ErrMalformedInput, name, raw)
}
