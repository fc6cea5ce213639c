package main

// Page shell plus the standalone form and error pages. Section fragments come
// from the render package; everything here is host-side chrome.
const pageShellTemplates = `
{{define "head"}}
<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{.AppName}}</title>
  <link href="https://cdn.jsdelivr.net/npm/bootstrap@5.1.3/dist/css/bootstrap.min.css" rel="stylesheet">
</head>
<body>
{{end}}

{{define "nav"}}
<nav class="navbar navbar-expand-lg navbar-dark bg-primary mb-4">
  <div class="container">
    <a class="navbar-brand" href="/sections/home">{{.AppName}}</a>
    <ul class="navbar-nav me-auto">
      {{navLink .Active "home" "Home"}}
      {{if .Viewer.CanSeeMemberSections}}
      {{navLink .Active "articles" "Articles"}}
      {{navLink .Active "announcements" "Announcements"}}
      {{navLink .Active "reminders" "Reminders"}}
      {{end}}
      {{navLink .Active "about" "About"}}
      {{if .Viewer.CanSeeAdmin}}{{navLink .Active "admin" "Admin"}}{{end}}
    </ul>
    <ul class="navbar-nav">
      {{if .Authenticated}}
      {{navLink .Active "profile" .Viewer.FullName}}
      <li class="nav-item">
        <form method="post" action="/logout" class="d-inline">
          <button type="submit" class="btn btn-link nav-link">Logout</button>
        </form>
      </li>
      {{end}}
    </ul>
  </div>
</nav>
{{end}}

{{define "auth_forms"}}
<div class="row">
  <div class="col-md-6">
    <div class="card mb-4">
      <div class="card-header"><h5>Login</h5></div>
      <div class="card-body">
        <form method="post" action="/login">
          <div class="mb-3">
            <label class="form-label" for="login-username">Username</label>
            <input class="form-control" id="login-username" name="username" required>
          </div>
          <div class="mb-3">
            <label class="form-label" for="login-password">Password</label>
            <input class="form-control" id="login-password" name="password" type="password" required>
          </div>
          <div class="form-check mb-3">
            <input class="form-check-input" id="login-remember" name="remember" type="checkbox">
            <label class="form-check-label" for="login-remember">Remember me</label>
          </div>
          <button type="submit" class="btn btn-primary">Login</button>
        </form>
      </div>
    </div>
  </div>
  <div class="col-md-6">
    <div class="card mb-4">
      <div class="card-header"><h5>Register</h5></div>
      <div class="card-body">
        <form method="post" action="/register">
          <div class="row">
            <div class="col mb-3">
              <label class="form-label" for="reg-first-name">First name</label>
              <input class="form-control" id="reg-first-name" name="first_name" required>
            </div>
            <div class="col mb-3">
              <label class="form-label" for="reg-last-name">Last name</label>
              <input class="form-control" id="reg-last-name" name="last_name" required>
            </div>
          </div>
          <div class="mb-3">
            <label class="form-label" for="reg-username">Username</label>
            <input class="form-control" id="reg-username" name="username" required>
          </div>
          <div class="mb-3">
            <label class="form-label" for="reg-email">Email</label>
            <input class="form-control" id="reg-email" name="email" type="email" required>
          </div>
          <div class="mb-3">
            <label class="form-label" for="reg-password">Password</label>
            <input class="form-control" id="reg-password" name="password" type="password" required>
          </div>
          <div class="row">
            <div class="col mb-3">
              <label class="form-label" for="reg-role">Role</label>
              <select class="form-select" id="reg-role" name="role">
                <option value="student">Student</option>
                <option value="parent">Parent</option>
                <option value="teacher">Teacher</option>
                <option value="language_teacher">Language Teacher</option>
              </select>
            </div>
            <div class="col mb-3">
              <label class="form-label" for="reg-grade">Grade level</label>
              <select class="form-select" id="reg-grade" name="grade_level">
                <option value="junior">Junior</option>
                <option value="middle">Middle</option>
                <option value="senior">Senior</option>
              </select>
            </div>
          </div>
          <button type="submit" class="btn btn-outline-primary">Register</button>
        </form>
      </div>
    </div>
  </div>
</div>
{{end}}

{{define "page"}}
{{template "head" .}}
{{template "nav" .}}
<div class="container">
  <div class="d-flex justify-content-between align-items-center mb-3">
    <h3>{{.Title}}</h3>
    {{if eq .Active "articles"}}{{if .Viewer.CanCreateContent}}
    <a class="btn btn-primary" href="/posts/new?type=article">Write Article</a>
    {{end}}{{end}}
    {{if eq .Active "announcements"}}{{if .Viewer.CanCreateContent}}
    <a class="btn btn-primary" href="/posts/new?type=announcement">New Announcement</a>
    {{end}}{{end}}
    {{if eq .Active "reminders"}}{{if .Viewer.CanCreateContent}}
    <a class="btn btn-primary" href="/posts/new?type=reminder">New Reminder</a>
    {{end}}{{end}}
    {{if eq .Active "about"}}{{if .Viewer.CanManageAbout}}
    <a class="btn btn-outline-primary" href="/admin/about">Manage Sections</a>
    {{end}}{{end}}
  </div>
  {{.Content}}
  {{if not .Authenticated}}{{template "auth_forms" .}}{{end}}
</div>
</body>
</html>
{{end}}

{{define "post_form"}}
{{template "head" .}}
<div class="container">
  <h3 class="mb-3">New Post</h3>
  <form method="post" action="/posts">
    <div class="mb-3">
      <label class="form-label" for="post-title">Title</label>
      <input class="form-control" id="post-title" name="title" required>
    </div>
    <div class="mb-3">
      <label class="form-label" for="post-content">Content</label>
      <textarea class="form-control" id="post-content" name="content" rows="8" required></textarea>
    </div>
    <div class="row">
      <div class="col mb-3">
        <label class="form-label" for="post-type">Type</label>
        <select class="form-select" id="post-type" name="post_type">
          <option value="article" {{if eq .PostType "article"}}selected{{end}}>Article</option>
          <option value="announcement" {{if eq .PostType "announcement"}}selected{{end}}>Announcement</option>
          <option value="reminder" {{if eq .PostType "reminder"}}selected{{end}}>Reminder</option>
          {{if .Viewer.CanCreateContent}}
          <option value="principal_note" {{if eq .PostType "principal_note"}}selected{{end}}>Principal's Note</option>
          {{end}}
        </select>
      </div>
      <div class="col mb-3">
        <label class="form-label" for="post-grade">Grade level</label>
        <select class="form-select" id="post-grade" name="grade_level">
          <option value="all">All Grades</option>
          <option value="junior">Junior</option>
          <option value="middle">Middle</option>
          <option value="senior">Senior</option>
        </select>
      </div>
    </div>
    <div class="mb-3">
      <label class="form-label" for="post-expires">Expires at (announcements only)</label>
      <input class="form-control" id="post-expires" name="expires_at" type="datetime-local">
    </div>
    <button type="submit" class="btn btn-primary">Publish</button>
    <a class="btn btn-secondary" href="/sections/home">Cancel</a>
  </form>
</div>
</body>
</html>
{{end}}

{{define "about_form"}}
{{template "head" .}}
<div class="container">
  <h3 class="mb-3">{{if .Edit}}Edit Section{{else}}New Section{{end}}</h3>
  <form method="post" action="{{if .Edit}}/admin/about/{{.ID}}{{else}}/admin/about{{end}}">
    <div class="mb-3">
      <label class="form-label" for="about-section-name">Section name</label>
      <input class="form-control" id="about-section-name" name="section_name"
             value="{{.SectionName}}" {{if .Edit}}disabled{{else}}required{{end}}>
      {{if .Edit}}<div class="form-text">The section name cannot be changed.</div>{{end}}
    </div>
    <div class="mb-3">
      <label class="form-label" for="about-title">Title</label>
      <input class="form-control" id="about-title" name="title" value="{{.Title}}" required>
    </div>
    <div class="mb-3">
      <label class="form-label" for="about-content">Content (markdown)</label>
      <textarea class="form-control" id="about-content" name="content" rows="10" required>{{.Content}}</textarea>
    </div>
    <div class="row">
      <div class="col mb-3">
        <label class="form-label" for="about-order">Display order</label>
        <input class="form-control" id="about-order" name="display_order" type="number" value="{{.DisplayOrder}}">
      </div>
      <div class="col mb-3 form-check align-self-end">
        <input class="form-check-input" id="about-active" name="is_active" type="checkbox" {{if .IsActive}}checked{{end}}>
        <label class="form-check-label" for="about-active">Active</label>
      </div>
    </div>
    <button type="submit" class="btn btn-primary">Save</button>
    <a class="btn btn-secondary" href="/admin/about">Cancel</a>
  </form>
</div>
</body>
</html>
{{end}}

{{define "error"}}
{{template "head" .}}
<div class="container">
  <div class="alert alert-danger mt-4">
    <h4 class="alert-heading">{{.Code}}</h4>
    <p>{{.Message}}</p>
    {{if .Fields}}
    <hr>
    <ul class="mb-0">
      {{range $field, $msg := .Fields}}<li><strong>{{$field}}</strong>: {{$msg}}</li>{{end}}
    </ul>
    {{end}}
  </div>
  <a class="btn btn-primary" href="/sections/home">Back to Home</a>
</div>
</body>
</html>
{{end}}
`
