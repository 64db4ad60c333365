package splitter

import "testing"

func TestClassify(t *testing.T) {
	cases := []struct {
		line       string
		kind       lineKind
		table      string
		terminated bool
	}{
		{"", kindCommentOrBlank, "", false},
		{"   ", kindCommentOrBlank, "", false},
		{"-- MySQL dump 10.13", kindCommentOrBlank, "", false},
		{"  -- Table structure for table `users`", kindCommentOrBlank, "", false},

		{"CREATE TABLE `users` (", kindCreateTable, "users", false},
		{"CREATE TABLE `users` (id INT);", kindCreateTable, "users", true},
		{"create table if not exists `users` (", kindCreateTable, "users", false},
		{"CREATE TABLE IF NOT EXISTS orders (", kindCreateTable, "orders", false},
		{"  CREATE TABLE plain_name(id INT);", kindCreateTable, "plain_name", true},
		// unterminated quoting: no name either way
		{"CREATE TABLE `broken (", kindCreateTable, "", false},
		{"CREATE TABLE", kindCreateTable, "", false},

		{"INSERT INTO `users` VALUES (1);", kindInsert, "users", true},
		{"INSERT INTO users VALUES (1),", kindInsert, "users", false},
		{"insert into `users` (`id`) VALUES (1);", kindInsert, "users", true},

		{"LOCK TABLES `users` WRITE;", kindLockTables, "users", true},
		{"UNLOCK TABLES;", kindUnlockTables, "", true},
		{"SET FOREIGN_KEY_CHECKS = 0;", kindFKPragma, "", true},
		{"SET FOREIGN_KEY_CHECKS=1;", kindFKPragma, "", true},

		// bodies and row batches are continuations
		{"  `id` int NOT NULL,", kindContinuation, "", false},
		{") ENGINE=InnoDB;", kindContinuation, "", true},
		{"(2,'b'),", kindContinuation, "", false},
		{"(3,'c');", kindContinuation, "", true},
		// keyword must sit at a token boundary
		{"CREATE TABLESPACE ts1;", kindContinuation, "", true},
		{"INSERT INTOX VALUES (1);", kindContinuation, "", true},
	}

	for _, c := range cases {
		lc := classify(c.line)
		if lc.kind != c.kind || lc.table != c.table || lc.terminated != c.terminated {
			t.Errorf("classify(%q) = {kind:%d table:%q terminated:%v}, want {kind:%d table:%q terminated:%v}",
				c.line, lc.kind, lc.table, lc.terminated, c.kind, c.table, c.terminated)
		}
	}
}

func TestUnsafeTableName(t *testing.T) {
	for _, name := range []string{"", ".", "..", "a/b", `a\b`, "a\x00b"} {
		if !unsafeTableName(name) {
			t.Errorf("unsafeTableName(%q) = false, want true", name)
		}
	}
	for _, name := range []string{"users", "_tmp", "a.b", "UPPER"} {
		if unsafeTableName(name) {
			t.Errorf("unsafeTableName(%q) = true, want false", name)
		}
	}
}
